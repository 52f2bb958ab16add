package cpu

// swap exchanges the upper and lower nibbles of value.
func (c *CPU) swap(value uint8) uint8 {
	result := value<<4 | value>>4
	c.setFlags(c.zeroFlag(result), clear, clear, clear)
	return result
}
