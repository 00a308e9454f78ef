package disasm

import (
	"testing"

	"github.com/retroenv/m6502emu/internal/memory"
	"github.com/retroenv/retrogolib/assert"
)

func newMemory(t *testing.T, address uint16, data ...byte) *memory.Map {
	t.Helper()
	mem, err := memory.New()
	assert.NoError(t, err)
	for i, b := range data {
		mem.Write(address+uint16(i), b)
	}
	return mem
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		address uint16
		data    []byte
		want    string
		size    int
	}{
		{"implied", 0x8000, []byte{0xEA}, "nop", 1},
		{"accumulator", 0x8000, []byte{0x0A}, "asl a", 1},
		{"immediate", 0x8000, []byte{0xA9, 0x87}, "lda #$87", 2},
		{"zero page", 0x8000, []byte{0x85, 0x04}, "sta $04", 2},
		{"zero page X", 0x8000, []byte{0xB5, 0x10}, "lda $10,X", 2},
		{"zero page Y", 0x8000, []byte{0xB6, 0x10}, "ldx $10,Y", 2},
		{"absolute", 0x8000, []byte{0x20, 0x34, 0x12}, "jsr $1234", 3},
		{"absolute X", 0x8000, []byte{0xBD, 0x00, 0x02}, "lda $0200,X", 3},
		{"absolute Y", 0x8000, []byte{0x99, 0x00, 0x02}, "sta $0200,Y", 3},
		{"indirect", 0x8000, []byte{0x6C, 0xFC, 0xFF}, "jmp ($FFFC)", 3},
		{"indirect X", 0x8000, []byte{0xA1, 0x20}, "lda ($20,X)", 2},
		{"indirect Y", 0x8000, []byte{0xB1, 0x20}, "lda ($20),Y", 2},
		{"relative forward", 0x8000, []byte{0xD0, 0x10}, "bne $8012", 2},
		{"relative backward", 0x8003, []byte{0xD0, 0xFD}, "bne $8002", 2},
		{"relative wraps", 0x0000, []byte{0xF0, 0xFC}, "beq $FFFE", 2},
		{"halt", 0x8000, []byte{0x00}, "brk", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := newMemory(t, tt.address, tt.data...)

			ins := Decode(mem, tt.address)
			assert.Equal(t, tt.want, ins.String())
			assert.Equal(t, tt.size, ins.Size())
			assert.Equal(t, tt.address, ins.Address)
			assert.False(t, ins.Unofficial)
		})
	}
}

func TestDecodeUnofficial(t *testing.T) {
	mem := newMemory(t, 0x8000, 0xA7, 0x10) // lax $10

	ins := Decode(mem, 0x8000)
	assert.True(t, ins.Unofficial)
	assert.Equal(t, 2, ins.Size())
}

func TestHex(t *testing.T) {
	mem := newMemory(t, 0x8000, 0x8D, 0x00, 0x02)

	ins := Decode(mem, 0x8000)
	assert.Equal(t, "8D 00 02", ins.Hex())
}
