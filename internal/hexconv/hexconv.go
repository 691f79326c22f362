package hexconv

// Invalid marks bytes that aren't hexadecimal digits.
const Invalid = 0xff

// Halfbyte maps an ASCII character to the value of the hex digit it stands
// for, or Invalid if it isn't one.
var Halfbyte = [256]byte{
	'0': 0x0, '1': 0x1, '2': 0x2, '3': 0x3, '4': 0x4,
	'5': 0x5, '6': 0x6, '7': 0x7, '8': 0x8, '9': 0x9,
	'a': 0xa, 'b': 0xb, 'c': 0xc, 'd': 0xd, 'e': 0xe, 'f': 0xf,
	'A': 0xA, 'B': 0xB, 'C': 0xC, 'D': 0xD, 'E': 0xE, 'F': 0xF,
}

func init() {
	for i := range Halfbyte {
		switch {
		case i >= '0' && i <= '9':
		case i >= 'a' && i <= 'f':
		case i >= 'A' && i <= 'F':
		default:
			Halfbyte[i] = Invalid
		}
	}
}

// Is reports whether the byte is a hexadecimal digit.
func Is(char byte) bool {
	return Halfbyte[char] != Invalid
}
