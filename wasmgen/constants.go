package wasmgen

// ValType is a WebAssembly value type byte.
type ValType byte

const (
	ValI32 ValType = 0x7F
)

// Magic and Version are the eight header bytes every module starts with.
const (
	Magic   uint32 = 0x6D736100
	Version uint32 = 0x01
)

// Section IDs, in the canonical order sections must appear.
const (
	SectionType     byte = 1
	SectionImport   byte = 2
	SectionFunction byte = 3
	SectionMemory   byte = 5
	SectionExport   byte = 7
	SectionCode     byte = 10
)

// Import/export descriptor kinds.
const (
	KindFunc   byte = 0
	KindMemory byte = 2
)

const funcTypeTag byte = 0x60

// Opcodes used by expression lowering (spec.md §4.3).
const (
	OpEnd      byte = 0x0B
	OpCall     byte = 0x10
	OpI32Const byte = 0x41
	OpI32Add   byte = 0x6A
	OpI32Sub   byte = 0x6B
	OpI32Mul   byte = 0x6C
	OpI32DivS  byte = 0x6D
	OpI32RemS  byte = 0x6F
)

// Memory limits for the injected linear memory: min 0 pages, max 1024.
const (
	limitsHasMax byte   = 0x01
	memoryMin    uint32 = 0
	memoryMax    uint32 = 1024
)

const (
	wasiModuleName   = "wasi_snapshot_preview1"
	procExitName     = "proc_exit"
	startName        = "_start"
	memoryExportName = "memory"
)
