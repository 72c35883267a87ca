package ir

import (
	"bufio"
	"fmt"
	"strings"

	"aion/internal/support"
)

var linkageKeywords = map[string]bool{
	"internal": true, "private": true, "external": true, "linkonce": true, "weak": true,
}

var visibilityKeywords = map[string]bool{
	"default": true, "hidden": true, "protected": true,
}

var callingConvKeywords = map[string]bool{
	"ccc": true, "fastcc": true, "coldcc": true, "swiftcc": true,
}

// ParseModule parses the simplified textual IR form produced by Print. It
// reports a *support.Error with Kind ParseErrorKind on malformed input.
func ParseModule(text string) (*Module, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	mod := &Module{}
	var cur *Function
	var curBlock *Block
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimRight(raw, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "declare "):
			f, err := parseFunctionHeader(strings.TrimPrefix(line, "declare "))
			if err != nil {
				return nil, support.NewParseError(fmt.Sprintf("line %d: %v", lineNo, err), nil)
			}
			f.IsDeclaration = true
			mod.Functions = append(mod.Functions, f)
			cur, curBlock = nil, nil

		case strings.HasPrefix(line, "define "):
			header := strings.TrimPrefix(line, "define ")
			header = strings.TrimSuffix(strings.TrimSpace(header), "{")
			f, err := parseFunctionHeader(strings.TrimSpace(header))
			if err != nil {
				return nil, support.NewParseError(fmt.Sprintf("line %d: %v", lineNo, err), nil)
			}
			mod.Functions = append(mod.Functions, f)
			cur, curBlock = f, nil

		case strings.TrimSpace(line) == "}":
			if cur == nil {
				return nil, support.NewParseError(fmt.Sprintf("line %d: unexpected '}'", lineNo), nil)
			}
			cur, curBlock = nil, nil

		case !strings.HasPrefix(raw, " ") && strings.HasSuffix(strings.TrimSpace(line), ":"):
			if cur == nil {
				return nil, support.NewParseError(fmt.Sprintf("line %d: block label outside function", lineNo), nil)
			}
			name := strings.TrimSuffix(strings.TrimSpace(line), ":")
			b := &Block{Name: name}
			cur.Blocks = append(cur.Blocks, b)
			curBlock = b

		default:
			if curBlock == nil {
				return nil, support.NewParseError(fmt.Sprintf("line %d: instruction outside block: %q", lineNo, line), nil)
			}
			curBlock.Instrs = append(curBlock.Instrs, parseInstr(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, support.NewIoError("failed to read IR", err)
	}
	return mod, nil
}

func parseFunctionHeader(header string) (*Function, error) {
	header = strings.TrimSuffix(strings.TrimSpace(header), "{")
	header = strings.TrimSpace(header)

	var attrs []string
	if idx := strings.Index(header, " #"); idx >= 0 {
		rest := header[idx+1:]
		header = strings.TrimSpace(header[:idx])
		for _, tok := range strings.Fields(rest) {
			attrs = append(attrs, strings.TrimPrefix(tok, "#"))
		}
	}

	fields := strings.Fields(header)
	f := &Function{Attributes: attrs}
	var sigParts []string
	nameFound := false
	for _, tok := range fields {
		switch {
		case strings.HasPrefix(tok, "@"):
			f.Name = strings.TrimPrefix(tok, "@")
			nameFound = true
		case linkageKeywords[tok] && !nameFound:
			f.Linkage = tok
		case visibilityKeywords[tok] && !nameFound:
			f.Visibility = tok
		case callingConvKeywords[tok] && !nameFound:
			f.CallingConv = tok
		default:
			sigParts = append(sigParts, tok)
		}
	}
	if !nameFound {
		return nil, fmt.Errorf("missing @name in function header %q", header)
	}
	f.Signature = strings.Join(sigParts, " ")
	return f, nil
}

// parseInstr splits the optional "!dbg file:line:col" suffix and extracts
// the stable printed text (one leading whitespace run stripped) and the
// opcode name.
func parseInstr(line string) Instr {
	text := strings.TrimLeft(line, " \t")
	debugLoc := ""
	if idx := strings.Index(text, " !dbg "); idx >= 0 {
		debugLoc = strings.TrimSpace(text[idx+len(" !dbg "):])
		text = strings.TrimSpace(text[:idx])
	}
	return Instr{
		Text:     text,
		Opcode:   opcodeOf(text),
		DebugLoc: debugLoc,
	}
}

func opcodeOf(text string) string {
	fields := strings.Fields(text)
	for i, tok := range fields {
		if tok == "=" && i+1 < len(fields) {
			return fields[i+1]
		}
	}
	if len(fields) > 0 {
		return fields[0]
	}
	return ""
}
