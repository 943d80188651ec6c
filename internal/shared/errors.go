package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// cli errors
const (
	ErrorCreateFile = Error("could not create the file")
	ErrorEncodeFile = Error("could not encode to file")
)

// config errors
const (
	ErrInvalidPort        = Error("invalid port")
	ErrInvalidLogLevel    = Error("invalid log level")
	ErrInvalidEnvironment = Error("invalid environment name")
)

// web errors
const ErrAssetNotFound = Error("asset not found")
