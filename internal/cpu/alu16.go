package cpu

// addHL16 adds value to HL, per ADD HL,ss: N=0, H from bit 11, C from bit
// 15; Z is left unchanged.
func (c *CPU) addHL16(value uint16) {
	hl := c.HL()
	sum := uint32(hl) + uint32(value)
	c.setFlags(unchanged, clear,
		boolTri((hl&0x0FFF)+(value&0x0FFF) > 0x0FFF),
		boolTri(sum > 0xFFFF))
	c.SetHL(uint16(sum))
}

// spPlusSigned computes SP+e for ADD SP,e and LD HL,SP+e. Both share this
// exact flag computation: Z and N are cleared, and H/C are computed on the
// low-byte addition regardless of e's sign.
func (c *CPU) spPlusSigned(e int8) uint16 {
	sp := c.SP
	result := uint16(int32(sp) + int32(e))
	c.setFlags(clear, clear,
		boolTri((sp&0x0F)+(uint16(uint8(e))&0x0F) > 0x0F),
		boolTri((sp&0xFF)+(uint16(uint8(e))&0xFF) > 0xFF))
	return result
}
