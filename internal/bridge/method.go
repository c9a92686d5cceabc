// Package bridge is the host-to-native method channel. It only routes calls
// to platform handlers; the handlers own the permission APIs.
package bridge

import (
	"fmt"
	"strings"
)

// Channel is the method channel name the host app binds to.
const Channel = "com.baring/settings"

type Method string

const (
	MethodOpenAppSettings  Method = "openAppSettings"
	MethodCheckPermissions Method = "checkPermissions"
)

type ErrorCode string

const (
	CodeEmptyMethod    ErrorCode = "empty_method"
	CodeNotImplemented ErrorCode = "not_implemented"
	CodeHandlerMissing ErrorCode = "handler_missing"
)

type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Permissions mirrors the capability map returned by checkPermissions.
type Permissions struct {
	Camera       bool `json:"camera" yaml:"camera"`
	Notification bool `json:"notification" yaml:"notification"`
	Calendar     bool `json:"calendar" yaml:"calendar"`
}

// Map renders the host's wire shape.
func (p Permissions) Map() map[string]bool {
	return map[string]bool{
		"camera":       p.Camera,
		"notification": p.Notification,
		"calendar":     p.Calendar,
	}
}

type Call struct {
	Method Method
}

// Parse matches method names exactly, as the platform channel does.
func Parse(name string) (Call, error) {
	raw := strings.TrimSpace(name)
	if raw == "" {
		return Call{}, &Error{Code: CodeEmptyMethod, Message: "method name is empty"}
	}
	switch Method(raw) {
	case MethodOpenAppSettings, MethodCheckPermissions:
		return Call{Method: Method(raw)}, nil
	default:
		return Call{}, &Error{Code: CodeNotImplemented, Message: fmt.Sprintf("method %s is not implemented", raw)}
	}
}
