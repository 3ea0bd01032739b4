package cpu

// opcode is one entry of the instruction table: the mnemonic, the addressing
// mode the operand uses, the base cycle cost and the handler implementing the
// operation. Conditional cycle costs (branch taken, page crossing) are added
// by the handlers.
type opcode struct {
	name    string
	mode    Mode
	cycles  uint64
	handler func(c *CPU, mode Mode)
}

// opcodes maps opcode bytes to instructions. The table covers the documented
// instruction subset this core supports, a byte without an entry halts
// execution. Extending the subset means adding entries here, the handlers and
// addressing resolvers are shared.
var opcodes = [256]*opcode{
	0x00: {"brk", implied, 7, (*CPU).brk},
	0x02: {"hlt", implied, 0, (*CPU).hlt},
	0x05: {"ora", zeroPage, 3, (*CPU).ora},
	0x06: {"asl", zeroPage, 5, (*CPU).asl},
	0x08: {"php", implied, 3, (*CPU).php},
	0x09: {"ora", immediate, 2, (*CPU).ora},
	0x0A: {"asl", accumulator, 2, (*CPU).asl},
	0x0D: {"ora", absolute, 4, (*CPU).ora},
	0x0E: {"asl", absolute, 6, (*CPU).asl},
	0x10: {"bpl", relative, 2, (*CPU).bpl},
	0x18: {"clc", implied, 2, (*CPU).clc},
	0x20: {"jsr", absolute, 6, (*CPU).jsr},
	0x24: {"bit", zeroPage, 3, (*CPU).bit},
	0x25: {"and", zeroPage, 3, (*CPU).and},
	0x26: {"rol", zeroPage, 5, (*CPU).rol},
	0x28: {"plp", implied, 4, (*CPU).plp},
	0x29: {"and", immediate, 2, (*CPU).and},
	0x2C: {"bit", absolute, 4, (*CPU).bit},
	0x2D: {"and", absolute, 4, (*CPU).and},
	0x2E: {"rol", absolute, 6, (*CPU).rol},
	0x30: {"bmi", relative, 2, (*CPU).bmi},
	0x38: {"sec", implied, 2, (*CPU).sec},
	0x40: {"rti", implied, 6, (*CPU).rti},
	0x45: {"eor", zeroPage, 3, (*CPU).eor},
	0x46: {"lsr", zeroPage, 5, (*CPU).lsr},
	0x48: {"pha", implied, 3, (*CPU).pha},
	0x49: {"eor", immediate, 2, (*CPU).eor},
	0x4A: {"lsr", accumulator, 2, (*CPU).lsr},
	0x4C: {"jmp", absolute, 3, (*CPU).jmp},
	0x4D: {"eor", absolute, 4, (*CPU).eor},
	0x4E: {"lsr", absolute, 6, (*CPU).lsr},
	0x50: {"bvc", relative, 2, (*CPU).bvc},
	0x58: {"cli", implied, 2, (*CPU).cli},
	0x60: {"rts", implied, 6, (*CPU).rts},
	0x65: {"adc", zeroPage, 3, (*CPU).adc},
	0x66: {"ror", zeroPage, 5, (*CPU).ror},
	0x68: {"pla", implied, 4, (*CPU).pla},
	0x69: {"adc", immediate, 2, (*CPU).adc},
	0x6A: {"ror", accumulator, 2, (*CPU).ror},
	0x6C: {"jmp", indirect, 5, (*CPU).jmp},
	0x6D: {"adc", absolute, 4, (*CPU).adc},
	0x6E: {"ror", absolute, 6, (*CPU).ror},
	0x70: {"bvs", relative, 2, (*CPU).bvs},
	0x75: {"adc", zeroPageX, 4, (*CPU).adc},
	0x78: {"sei", implied, 2, (*CPU).sei},
	0x81: {"sta", indirectX, 6, (*CPU).sta},
	0x84: {"sty", zeroPage, 3, (*CPU).sty},
	0x85: {"sta", zeroPage, 3, (*CPU).sta},
	0x86: {"stx", zeroPage, 3, (*CPU).stx},
	0x88: {"dey", implied, 2, (*CPU).dey},
	0x8A: {"txa", implied, 2, (*CPU).txa},
	0x8C: {"sty", absolute, 4, (*CPU).sty},
	0x8D: {"sta", absolute, 4, (*CPU).sta},
	0x8E: {"stx", absolute, 4, (*CPU).stx},
	0x90: {"bcc", relative, 2, (*CPU).bcc},
	0x91: {"sta", indirectY, 6, (*CPU).sta},
	0x95: {"sta", zeroPageX, 4, (*CPU).sta},
	0x98: {"tya", implied, 2, (*CPU).tya},
	0x9A: {"txs", implied, 2, (*CPU).txs},
	0xA0: {"ldy", immediate, 2, (*CPU).ldy},
	0xA2: {"ldx", immediate, 2, (*CPU).ldx},
	0xA5: {"lda", zeroPage, 3, (*CPU).lda},
	0xA8: {"tay", implied, 2, (*CPU).tay},
	0xA9: {"lda", immediate, 2, (*CPU).lda},
	0xAA: {"tax", implied, 2, (*CPU).tax},
	0xAD: {"lda", absolute, 4, (*CPU).lda},
	0xB0: {"bcs", relative, 2, (*CPU).bcs},
	0xB5: {"lda", zeroPageX, 4, (*CPU).lda},
	0xB8: {"clv", implied, 2, (*CPU).clv},
	0xB9: {"lda", absoluteY, 4, (*CPU).lda},
	0xBA: {"tsx", implied, 2, (*CPU).tsx},
	0xBD: {"lda", absoluteX, 4, (*CPU).lda},
	0xC0: {"cpy", immediate, 2, (*CPU).cpy},
	0xC4: {"cpy", zeroPage, 3, (*CPU).cpy},
	0xC5: {"cmp", zeroPage, 3, (*CPU).cmp},
	0xC6: {"dec", zeroPage, 5, (*CPU).dec},
	0xC8: {"iny", implied, 2, (*CPU).iny},
	0xC9: {"cmp", immediate, 2, (*CPU).cmp},
	0xCA: {"dex", implied, 2, (*CPU).dex},
	0xCC: {"cpy", absolute, 4, (*CPU).cpy},
	0xCD: {"cmp", absolute, 4, (*CPU).cmp},
	0xCE: {"dec", absolute, 6, (*CPU).dec},
	0xD0: {"bne", relative, 2, (*CPU).bne},
	0xD8: {"cld", implied, 2, (*CPU).cld},
	0xE0: {"cpx", immediate, 2, (*CPU).cpx},
	0xE4: {"cpx", zeroPage, 3, (*CPU).cpx},
	0xE5: {"sbc", zeroPage, 3, (*CPU).sbc},
	0xE6: {"inc", zeroPage, 5, (*CPU).inc},
	0xE8: {"inx", implied, 2, (*CPU).inx},
	0xE9: {"sbc", immediate, 2, (*CPU).sbc},
	0xEA: {"nop", implied, 2, (*CPU).nop},
	0xEC: {"cpx", absolute, 4, (*CPU).cpx},
	0xED: {"sbc", absolute, 4, (*CPU).sbc},
	0xEE: {"inc", absolute, 6, (*CPU).inc},
	0xF0: {"beq", relative, 2, (*CPU).beq},
	0xF8: {"sed", implied, 2, (*CPU).sed},
}
