package chip8

// Keyboard is a single-slot latch holding the key (0x0-0xF) currently
// considered pressed, or no key at all. It is overwritten wholesale on each
// input sample by the driver; there is no concept of multiple
// simultaneously-held keys.
type Keyboard struct {
	key     Nibble
	pressed bool
}

// NewKeyboard returns a keyboard latch with no key pressed.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// SetPressed latches key as the currently pressed key.
func (k *Keyboard) SetPressed(key Nibble) {
	k.key = key
	k.pressed = true
}

// Release clears the latch; no key is considered pressed.
func (k *Keyboard) Release() {
	k.pressed = false
}

// Pressed returns the currently latched key and whether any key is latched
// at all.
func (k *Keyboard) Pressed() (Nibble, bool) {
	return k.key, k.pressed
}

// IsDown reports whether key is the currently latched key.
func (k *Keyboard) IsDown(key Nibble) bool {
	return k.pressed && k.key == key
}
