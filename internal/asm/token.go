// Package asm turns textual VM source into the vm.File/vm.Program values
// the execution engine consumes. spec.md scopes lexing and parsing out of
// the core engine; this package is the scaffolding a runnable repo needs
// to get from a `.vm` file on disk to something vm.Program.Run can execute,
// grounded on the teacher's vm/parse.go preprocessing conventions and
// original_source/tests/scan.c's token set.
package asm

// tokenKind enumerates the keyword and literal classes original_source's
// scanner recognizes (scan.c's TK_* constants), minus the handful that
// exist only to drive that C scanner's character-at-a-time state machine.
type tokenKind int

const (
	tkPush tokenKind = iota
	tkPop
	tkArg
	tkLoc
	tkStat
	tkConst
	tkThis
	tkThat
	tkPtr
	tkTmp
	tkAdd
	tkSub
	tkNeg
	tkEq
	tkGt
	tkLt
	tkAnd
	tkOr
	tkNot
	tkLabel
	tkGoto
	tkIfGoto
	tkFunc
	tkCall
	tkReturn
	tkUint
	tkIdent
)

var keywords = map[string]tokenKind{
	"push":     tkPush,
	"pop":      tkPop,
	"argument": tkArg,
	"local":    tkLoc,
	"static":   tkStat,
	"constant": tkConst,
	"this":     tkThis,
	"that":     tkThat,
	"pointer":  tkPtr,
	"temp":     tkTmp,
	"add":      tkAdd,
	"sub":      tkSub,
	"neg":      tkNeg,
	"eq":       tkEq,
	"gt":       tkGt,
	"lt":       tkLt,
	"and":      tkAnd,
	"or":       tkOr,
	"not":      tkNot,
	"label":    tkLabel,
	"goto":     tkGoto,
	"if-goto":  tkIfGoto,
	"function": tkFunc,
	"call":     tkCall,
	"return":   tkReturn,
}

// DefaultMaxIdentLen mirrors original_source/tests/scan.c's MAX_IDENT_LEN:
// an identifier longer than this is truncated, with a warning, rather
// than rejected outright. truncate_idents (scan.c:68-80) feeds a 25-char
// identifier and asserts it comes back truncated to 24 chars, so the
// boundary itself is 24, not 25. cmd/hvm's --max-ident overrides it.
const DefaultMaxIdentLen = 24

// token is one lexical unit of a source line, tagged with the column it
// started at for error positions.
type token struct {
	kind tokenKind
	text string
	num  int
	col  int
}
