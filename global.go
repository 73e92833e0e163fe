package st00012

const (
	// Wire layout of the fixed preamble: bytes 0-1 format marker,
	// 2-5 version, 6 encoding code, 7 separator.
	headerByteCount  = 8
	versionByteCount = 4
	versionOffset    = 2
	encodingOffset   = 6
	separatorOffset  = 7

	// DefaultSeparator splits the body into Key=Value pairs unless a
	// builder overrides it.
	DefaultSeparator = '|'

	// DefaultVersion is the format version written by the builder and
	// expected by parsers unless overridden.
	DefaultVersion = "0001"

	// emptyPlaceholder names a missing position in requisite order errors.
	emptyPlaceholder = "empty"
)

// Size bounds for the five required requisites, counted in characters.
const (
	nameMaxSize       = 160
	personalAccSize   = 20
	bankNameMaxSize   = 45
	bicSize           = 9
	correspAccMaxSize = 20
)

// Size bounds for the additional requisites that carry one.
const (
	sumMaxSize          = 18
	purposeMaxSize      = 210
	payeeINNMaxSize     = 12
	payerINNMaxSize     = 12
	drawerStatusMaxSize = 2
	kppMaxSize          = 9
	cbcMaxSize          = 20
	oktmoMaxSize        = 11
	paytReasonMaxSize   = 2
	taxPeriodMaxSize    = 10
	docNoMaxSize        = 15
	docDateMaxSize      = 10
	taxPayKindMaxSize   = 2
)

var (
	formatIDBytes       = [2]byte{'S', 'T'}
	defaultVersionBytes = [4]byte{'0', '0', '0', '1'}
)
