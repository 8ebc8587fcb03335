package constants

// Icon glyphs for use with icon fonts (Material Design Icons).
// These Unicode code points render as button prompts when drawn with an icon font.
const (
	IconA          = "\U000F0B08" // Alpha A circle
	IconB          = "\U000F0B0A" // Alpha B circle
	IconX          = "\U000F0B3C" // Alpha X circle
	IconY          = "\U000F0B3E" // Alpha Y circle
	IconStart      = "\U000F040A" // Play/start button
	IconBack       = "\uEACC"     // Select/menu button
	IconBumper     = "\U000F0A3D" // Shoulder button
	IconStick      = "\U000F0E73" // Analog stick
	IconDpadUp     = "\U000F0143" // Chevron up
	IconDpadDown   = "\U000F0140" // Chevron down
	IconDpadLeft   = "\U000F0141" // Chevron left
	IconDpadRight  = "\U000F0142" // Chevron right
	IconUnassigned = "\U000F0450" // Help circle
)

// Icon returns the icon-font glyph for a gamepad button.
func (gb GamepadButton) Icon() string {
	switch gb {
	case GamepadButtonA:
		return IconA
	case GamepadButtonB:
		return IconB
	case GamepadButtonX:
		return IconX
	case GamepadButtonY:
		return IconY
	case GamepadButtonStart:
		return IconStart
	case GamepadButtonBack:
		return IconBack
	case GamepadButtonLB, GamepadButtonRB:
		return IconBumper
	case GamepadButtonLeftStick, GamepadButtonRightStick:
		return IconStick
	case GamepadButtonDpadUp:
		return IconDpadUp
	case GamepadButtonDpadDown:
		return IconDpadDown
	case GamepadButtonDpadLeft:
		return IconDpadLeft
	case GamepadButtonDpadRight:
		return IconDpadRight
	default:
		return IconUnassigned
	}
}
