package bridge

import "fmt"

// Result carries exactly one of the method-specific payloads.
type Result struct {
	Method      Method
	Opened      bool
	Permissions *Permissions
}

// Value is the payload as the host receives it.
func (r Result) Value() any {
	switch r.Method {
	case MethodOpenAppSettings:
		return r.Opened
	case MethodCheckPermissions:
		if r.Permissions == nil {
			return Permissions{}.Map()
		}
		return r.Permissions.Map()
	default:
		return nil
	}
}

type Handlers struct {
	OpenAppSettings  func() (bool, error)
	CheckPermissions func() (Permissions, error)
}

func Dispatch(call Call, handlers Handlers) (Result, error) {
	switch call.Method {
	case MethodOpenAppSettings:
		if handlers.OpenAppSettings == nil {
			return Result{}, &Error{Code: CodeHandlerMissing, Message: "openAppSettings handler not configured"}
		}
		ok, err := handlers.OpenAppSettings()
		if err != nil {
			return Result{}, fmt.Errorf("openAppSettings: %w", err)
		}
		return Result{Method: call.Method, Opened: ok}, nil
	case MethodCheckPermissions:
		if handlers.CheckPermissions == nil {
			return Result{}, &Error{Code: CodeHandlerMissing, Message: "checkPermissions handler not configured"}
		}
		perms, err := handlers.CheckPermissions()
		if err != nil {
			return Result{}, fmt.Errorf("checkPermissions: %w", err)
		}
		return Result{Method: call.Method, Permissions: &perms}, nil
	default:
		return Result{}, &Error{Code: CodeNotImplemented, Message: fmt.Sprintf("unknown method: %s", call.Method)}
	}
}

// Invoke parses name and dispatches it.
func Invoke(name string, handlers Handlers) (Result, error) {
	call, err := Parse(name)
	if err != nil {
		return Result{}, err
	}
	return Dispatch(call, handlers)
}
