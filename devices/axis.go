package devices

// AxisRange is the inclusive value range of one absolute axis as reported by
// the kernel. A zero Maximum means the axis is not supported.
type AxisRange struct {
	Minimum int32 `json:"min"`
	Maximum int32 `json:"max"`
}

// Supported reports whether the device exposes the axis.
func (r AxisRange) Supported() bool {
	return r.Maximum > 0
}

func (r AxisRange) Span() int32 {
	return r.Maximum - r.Minimum
}

// Half is half the span, truncated.
func (r AxisRange) Half() int32 {
	return r.Span() / 2
}

// Mid is the axis center in device units.
func (r AxisRange) Mid() int32 {
	return r.Minimum + r.Half()
}

// ToDevice maps a percentage of the axis span to device units.
func (r AxisRange) ToDevice(percent float64) int32 {
	return int32(float64(r.Span())*percent/100 + float64(r.Minimum))
}

// MotionRange groups the axes a touch device reports.
type MotionRange struct {
	X        AxisRange `json:"x"`
	Y        AxisRange `json:"y"`
	Pressure AxisRange `json:"pressure"`
}

func (m MotionRange) ToDeviceX(percent float64) int32 {
	return m.X.ToDevice(percent)
}

func (m MotionRange) ToDeviceY(percent float64) int32 {
	return m.Y.ToDevice(percent)
}

// HasPressure reports whether contacts should carry ABS_MT_PRESSURE.
func (m MotionRange) HasPressure() bool {
	return m.Pressure.Supported()
}

// PressureMax is the pressure reported for a contact going down, or 0 when
// the device has no pressure axis.
func (m MotionRange) PressureMax() int32 {
	if !m.HasPressure() {
		return 0
	}
	return m.Pressure.Maximum
}

// PressureMin is the pressure reported for a contact lifting off.
func (m MotionRange) PressureMin() int32 {
	if !m.HasPressure() {
		return 0
	}
	return m.Pressure.Minimum
}
