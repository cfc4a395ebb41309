package types

// State describes where a scan ended up. A scan starts in StateScanning and
// terminates in exactly one of StateFound or StateExhausted.
type State string

const (
	StateScanning  State = "scanning"
	StateFound     State = "found"
	StateExhausted State = "exhausted"
)

// Detection is a validated DSN together with its provenance: the file it was
// extracted from and the detector that extracted it. The DSN field always
// holds the canonical form produced by the dsn package.
type Detection struct {
	DSN      string `json:"dsn"`
	Path     string `json:"path"`
	Detector string `json:"detector"`
}
