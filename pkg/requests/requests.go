package requests

type RequestType uint8

const (
	RequestTypeAudioInterfaceSetRequest RequestType = 0b00100001
	RequestTypeAudioEndpointSetRequest  RequestType = 0b00100010
	RequestTypeAudioInterfaceGetRequest RequestType = 0b10100001
	RequestTypeAudioEndpointGetRequest  RequestType = 0b10100010
)

type RequestCode uint8

// UAC1 request codes. UAC2 collapses the table to CUR/RANGE and moves the
// get/set distinction into the bmRequestType direction bit.
const (
	RequestCodeUndefined RequestCode = 0x00
	RequestCodeSetCur    RequestCode = 0x01
	RequestCodeSetMin    RequestCode = 0x02
	RequestCodeSetMax    RequestCode = 0x03
	RequestCodeSetRes    RequestCode = 0x04
	RequestCodeSetMem    RequestCode = 0x05
	RequestCodeGetCur    RequestCode = 0x81
	RequestCodeGetMin    RequestCode = 0x82
	RequestCodeGetMax    RequestCode = 0x83
	RequestCodeGetRes    RequestCode = 0x84
	RequestCodeGetMem    RequestCode = 0x85
	RequestCodeGetStat   RequestCode = 0xFF
)

// UAC2 request codes.
const (
	RequestCodeCur   RequestCode = 0x01
	RequestCodeRange RequestCode = 0x02
)
