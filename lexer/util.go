package lexer

// Lua 5.1 identifiers are ASCII letters, digits, and underscores.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// isNumberAfterDot checks the ".5" case: a dot directly followed by a digit.
func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

// try3 and try2 consume the next bytes if they match, for greedy operator
// scanning.
func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

// longBracketLevel checks for a long-bracket opener at the cursor without
// consuming it: a '[', any number of '=', then another '['. It returns the
// number of equals signs.
func (lx *Lexer) longBracketLevel() (level int, ok bool) {
	off := int(lx.cursor.Off)
	if off >= len(lx.src) || lx.src[off] != '[' {
		return 0, false
	}
	i := off + 1
	for i < len(lx.src) && lx.src[i] == '=' {
		i++
	}
	if i < len(lx.src) && lx.src[i] == '[' {
		return i - off - 1, true
	}
	return 0, false
}
