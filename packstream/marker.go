package packstream

// Marker bytes, as laid out in the PackStream v1 marker table. Multi-byte
// payloads that follow a marker are always big-endian.
const (
	markerNull  byte = 0xC0
	markerFalse byte = 0xC2
	markerTrue  byte = 0xC3
	markerFloat byte = 0xC1

	markerInt8  byte = 0xC8
	markerInt16 byte = 0xC9
	markerInt32 byte = 0xCA
	markerInt64 byte = 0xCB

	// TinyInt occupies the marker byte itself: 0x00-0x7F is 0..127,
	// 0xF0-0xFF is -16..-1. tinyIntPositiveMax and tinyIntNegativeMin
	// below bound those two ranges.
	tinyIntPositiveMax byte = 0x7F
	tinyIntNegativeMin byte = 0xF0

	markerTinyStringBase byte = 0x80
	markerTinyStringMax  byte = 0x8F
	markerString8        byte = 0xD0
	markerString16       byte = 0xD1
	markerString32       byte = 0xD2

	markerBytes8  byte = 0xCC
	markerBytes16 byte = 0xCD
	markerBytes32 byte = 0xCE

	markerTinyListBase byte = 0x90
	markerTinyListMax  byte = 0x9F
	markerList8        byte = 0xD4
	markerList16       byte = 0xD5
	markerList32       byte = 0xD6

	markerTinyMapBase byte = 0xA0
	markerTinyMapMax  byte = 0xAF
	markerMap8        byte = 0xD8
	markerMap16       byte = 0xD9
	markerMap32       byte = 0xDA

	markerTinyStructBase byte = 0xB0
	markerTinyStructMax  byte = 0xBF
	markerStruct8        byte = 0xDC
	markerStruct16       byte = 0xDD

	// markerBlob8/markerBlob16 are a vendor extension (non-standard
	// PackStream v1) carrying a length and a MIME type. Reserved here,
	// unimplemented: there's no decoder wired to them yet, so any byte
	// stream using them is rejected as an unrecognized marker.
	markerBlob8  byte = 0xC4
	markerBlob16 byte = 0xC5
)

const (
	tinySize  = 15
	maxUint8  = 1<<8 - 1
	maxUint16 = 1<<16 - 1
	maxUint32 = 1<<32 - 1
)
