// Package errors provides structured error handling for the engine.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Board descriptor errors
	CodeBoardInvalidDescriptor Code = "BOARD_INVALID_DESCRIPTOR"
	CodeBoardEmpty             Code = "BOARD_EMPTY"
	CodeBoardDuplicateTile     Code = "BOARD_DUPLICATE_TILE"
	CodeBoardTileMissingName   Code = "BOARD_TILE_MISSING_NAME"
	CodeBoardTileMissingType   Code = "BOARD_TILE_MISSING_TYPE"

	// Construction errors
	CodeConfigInvalidPlayerCount Code = "CONFIG_INVALID_PLAYER_COUNT"
	CodeConfigMissingBoard       Code = "CONFIG_MISSING_BOARD"

	// Script errors
	CodeScriptCompile       Code = "SCRIPT_COMPILE"
	CodeScriptRuntime       Code = "SCRIPT_RUNTIME"
	CodeScriptStepLimit     Code = "SCRIPT_STEP_LIMIT"
	CodeScriptInvalidPlayer Code = "SCRIPT_INVALID_PLAYER"
	CodePositionOutOfRange  Code = "SCRIPT_POSITION_OUT_OF_RANGE"
	CodeResourceReadOnly    Code = "SCRIPT_RESOURCE_READ_ONLY"

	// Turn state machine errors
	CodeTurnInvalidState Code = "TURN_INVALID_STATE"
)

// Kind groups codes into the caller-facing error categories of the engine
// surface: board descriptor parsing, construction parameters, script
// execution, and state machine misuse.
type Kind int

const (
	// KindUnknown represents an unclassified error.
	KindUnknown Kind = iota
	// KindParse indicates a malformed or invalid board descriptor.
	KindParse
	// KindConfig indicates invalid construction parameters.
	KindConfig
	// KindScript indicates a script compile failure or runtime fault.
	KindScript
	// KindInvalidState indicates a state machine method invoked outside
	// its valid state.
	KindInvalidState
)

// Kind maps a code to its caller-facing error category.
func (c Code) Kind() Kind {
	switch c {
	// Parse - malformed board descriptors
	case CodeBoardInvalidDescriptor,
		CodeBoardEmpty,
		CodeBoardDuplicateTile,
		CodeBoardTileMissingName,
		CodeBoardTileMissingType:
		return KindParse

	// Config - invalid construction parameters
	case CodeConfigInvalidPlayerCount,
		CodeConfigMissingBoard:
		return KindConfig

	// Script - compile failures and runtime faults
	case CodeScriptCompile,
		CodeScriptRuntime,
		CodeScriptStepLimit,
		CodeScriptInvalidPlayer,
		CodePositionOutOfRange,
		CodeResourceReadOnly:
		return KindScript

	// InvalidState - state machine misuse
	case CodeTurnInvalidState:
		return KindInvalidState

	default:
		return KindUnknown
	}
}
