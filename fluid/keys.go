package fluid

// Developer hotkeys, as DOM key codes.
const (
	KeyAddLayer   = 78  // N
	KeyRegenerate = 82  // R
	KeyReset      = 88  // X
	KeyDebug      = 121 // F10
)

// KeyMap maps alternative keys to canonical hotkeys.
var KeyMap = map[int]int{
	32:  KeyRegenerate, // Space => R
	8:   KeyReset,      // Backspace => X
	68:  KeyDebug,      // D => F10
	187: KeyAddLayer,   // = => N
}

// TranslateKeyCode converts alternative key codes to canonical hotkeys.
func TranslateKeyCode(keyCode int) int {
	if mapped, ok := KeyMap[keyCode]; ok {
		return mapped
	}
	return keyCode
}

// OnKeyDown runs developer hotkeys and reports whether the key was used.
// Keys are ignored outside developer mode.
func (b *Bridge) OnKeyDown(keyCode int) bool {
	if !b.State.DevMode {
		return false
	}
	opts := b.State.Options
	switch TranslateKeyCode(keyCode) {
	case KeyDebug:
		if !opts.Has(FieldShowDebug) {
			return false
		}
		opts.ShowDebug = !opts.ShowDebug
		b.applyEffects()
		if b.Panel != nil && b.Panel.OnEdit != nil {
			b.Panel.OnEdit(FieldShowDebug, opts.ShowDebug)
		}
	case KeyRegenerate:
		b.Regenerate()
	case KeyReset:
		b.Engine.ResetLayers()
	case KeyAddLayer:
		if b.State.Composition == CompBox {
			return false
		}
		b.Engine.AddNewLayer()
	default:
		return false
	}
	return true
}
