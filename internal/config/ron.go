package config

import (
	"bytes"
	"fmt"
)

type frameKind int

const (
	frameStruct frameKind = iota
	frameTuple
	frameSome
)

// NormalizeRON rewrites the subset of RON that cosmic-config writes into a
// YAML flow document that yaml.v3 can decode.
//
//	(family: "Fira Sans", weight: Bold)  ->  {family: "Fira Sans", weight: Bold}
//	Some((red: 1.0, green: 0.5, blue: 0.0))  ->  {red: 1.0, green: 0.5, blue: 0.0}
//	None  ->  null
//	(1, 2)  ->  [1, 2]
//
// Struct names (Srgba(...)) are dropped. Raw strings are not supported.
func NormalizeRON(src []byte) ([]byte, error) {
	var (
		out   bytes.Buffer
		stack []frameKind
	)

	out.Grow(len(src) + 16)

	for i := 0; i < len(src); {
		c := src[i]

		switch {
		case c == '"' || c == '\'':
			end, err := scanString(src, i)
			if err != nil {
				return nil, err
			}
			out.Write(src[i:end])
			i = end

		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}

		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := bytes.Index(src[i+2:], []byte("*/"))
			if end < 0 {
				return nil, fmt.Errorf("unterminated block comment at offset %d", i)
			}
			i += end + 4

		case isIdentStart(c):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			ident := string(src[start:i])

			next := skipSpace(src, i)
			opens := next < len(src) && src[next] == '('

			switch {
			case ident == "Some" && opens:
				stack = append(stack, frameSome)
				i = next + 1
			case ident == "None":
				out.WriteString("null")
			case opens:
				// Named struct or tuple variant: the name carries no data.
				i = next
			default:
				out.WriteString(ident)
			}

		case c == '(':
			if isStructBody(src, i+1) {
				stack = append(stack, frameStruct)
				out.WriteByte('{')
			} else {
				stack = append(stack, frameTuple)
				out.WriteByte('[')
			}
			i++

		case c == ')':
			if len(stack) == 0 {
				return nil, fmt.Errorf("unbalanced ')' at offset %d", i)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			trimTrailingComma(&out)

			switch top {
			case frameStruct:
				out.WriteByte('}')
			case frameTuple:
				out.WriteByte(']')
			}
			i++

		case c == ']' || c == '}':
			trimTrailingComma(&out)
			out.WriteByte(c)
			i++

		case c == ':':
			out.WriteString(": ")
			i++

		default:
			out.WriteByte(c)
			i++
		}
	}

	if len(stack) != 0 {
		return nil, fmt.Errorf("unbalanced '(': %d unclosed", len(stack))
	}

	return out.Bytes(), nil
}

func scanString(src []byte, start int) (int, error) {
	quote := src[start]
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case quote:
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("unterminated string at offset %d", start)
}

// isStructBody reports whether the parenthesised body starting at i opens
// with "ident:".
func isStructBody(src []byte, i int) bool {
	i = skipSpace(src, i)
	if i >= len(src) || !isIdentStart(src[i]) {
		return false
	}

	for i < len(src) && isIdentPart(src[i]) {
		i++
	}

	i = skipSpace(src, i)

	return i < len(src) && src[i] == ':'
}

func trimTrailingComma(out *bytes.Buffer) {
	b := bytes.TrimRight(out.Bytes(), " \t\r\n")
	if len(b) > 0 && b[len(b)-1] == ',' {
		out.Truncate(len(b) - 1)
	}
}

func skipSpace(src []byte, i int) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t' || src[i] == '\n' || src[i] == '\r') {
		i++
	}

	return i
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
