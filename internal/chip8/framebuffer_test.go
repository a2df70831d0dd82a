package chip8

import "testing"

func TestFrameBufferDrawSpriteNoCollision(t *testing.T) {
	f := NewFrameBuffer()
	sprite := []Byte{0xF0} // four lit pixels at columns 0-3

	collided := f.DrawSprite(0, 0, sprite)
	if collided {
		t.Fatal("drawing into a clear buffer should never collide")
	}
	for x := 0; x < 4; x++ {
		if !f.Pixel(x, 0) {
			t.Errorf("expected pixel (%d, 0) lit", x)
		}
	}
	for x := 4; x < 8; x++ {
		if f.Pixel(x, 0) {
			t.Errorf("expected pixel (%d, 0) unlit", x)
		}
	}
}

func TestFrameBufferDrawSpriteXORCollision(t *testing.T) {
	f := NewFrameBuffer()
	sprite := []Byte{0xF0}

	f.DrawSprite(0, 0, sprite)
	collided := f.DrawSprite(0, 0, sprite)
	if !collided {
		t.Fatal("drawing the same sprite twice should collide")
	}
	for x := 0; x < 4; x++ {
		if f.Pixel(x, 0) {
			t.Errorf("pixel (%d, 0) should have been XORed back off", x)
		}
	}
}

func TestFrameBufferDrawSpriteHorizontalWrap(t *testing.T) {
	f := NewFrameBuffer()
	sprite := []Byte{0xFF} // 8 lit pixels

	f.DrawSprite(DisplayWidth-4, 0, sprite)
	for x := DisplayWidth - 4; x < DisplayWidth; x++ {
		if !f.Pixel(x, 0) {
			t.Errorf("expected pixel (%d, 0) lit", x)
		}
	}
	for x := 0; x < 4; x++ {
		if !f.Pixel(x, 0) {
			t.Errorf("expected wrapped pixel (%d, 0) lit", x)
		}
	}
}

func TestFrameBufferClear(t *testing.T) {
	f := NewFrameBuffer()
	f.DrawSprite(0, 0, []Byte{0xFF})
	f.Clear()
	for x := 0; x < 8; x++ {
		if f.Pixel(x, 0) {
			t.Errorf("pixel (%d, 0) should be off after Clear", x)
		}
	}
}
