// Package preset maps the host's selected preset index to a fixed gradient.
package preset

// Count is the number of compiled-in presets.
const Count = 10

type StylePreset struct {
	Index int
	Start Color
	End   Color
	Dark  bool
}

var table = [Count]StylePreset{
	{Index: 0, Start: ParseHex("2D86FF"), End: ParseHex("1B5CFF")},
	{Index: 1, Start: ParseHex("0E2A68"), End: ParseHex("245BFF")},
	{Index: 2, Start: ParseHex("FF512F"), End: ParseHex("DD2476")},
	{Index: 3, Start: ParseHex("FF7EB3"), End: ParseHex("FF758C")},
	{Index: 4, Start: ParseHex("8A2BE2"), End: ParseHex("FF3D8D")},
	{Index: 5, Start: ParseHex("FF8A00"), End: ParseHex("FF3D5A")},
	{Index: 6, Start: ParseHex("FF9A5A"), End: ParseHex("FF5E62")},
	{Index: 7, Start: ParseHex("34D399"), End: ParseHex("059669")},
	{Index: 8, Start: ParseHex("2C2F4A"), End: ParseHex("1A1C2C"), Dark: true},
	{Index: 9, Start: ParseHex("1B2430"), End: ParseHex("0F141B"), Dark: true},
}

// Resolve never fails: indices outside 0..Count-1 get preset 0.
func Resolve(index int) StylePreset {
	if index < 0 || index >= Count {
		return table[0]
	}
	return table[index]
}

func All() []StylePreset {
	out := make([]StylePreset, Count)
	copy(out, table[:])
	return out
}

// Ramp interpolates steps colors from Start to End in Luv space.
func (p StylePreset) Ramp(steps int) []Color {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []Color{p.Start}
	}
	from, to := p.Start.colorful(), p.End.colorful()
	out := make([]Color, 0, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		out = append(out, fromColorful(from.BlendLuv(to, t)))
	}
	out[0], out[steps-1] = p.Start, p.End
	return out
}

// Mid is the gradient's midpoint, used where only one fill color fits.
func (p StylePreset) Mid() Color {
	return fromColorful(p.Start.colorful().BlendLuv(p.End.colorful(), 0.5))
}
