package decoder

import "fmt"

// InvalidOpcodeError reports an unknown type tag or operator subfield.
type InvalidOpcodeError struct{}

func (*InvalidOpcodeError) Error() string {
	return "decoder: invalid opcode"
}

// InvalidQubitIndexError reports arg/ctrl/targ >= MaxQubits.
type InvalidQubitIndexError struct {
	Index uint32
}

func (e *InvalidQubitIndexError) Error() string {
	return fmt.Sprintf("decoder: invalid qubit index %d", e.Index)
}
