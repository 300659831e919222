package logtrace

// Fields is a type alias for structured log fields
type Fields map[string]interface{}

const (
	FieldCorrelationID = "correlation_id"
	FieldModule        = "module"
	FieldError         = "error"
	FieldAssetID       = "asset_id"
	FieldNamespace     = "namespace"
	FieldRecords       = "records"
	FieldChecksum      = "checksum"
	FieldSize          = "size"
	FieldPath          = "path"

	ValueCodec       = "codec"
	ValuePipeline    = "sep39-pipeline"
	ValueRecordStore = "record-store"
	ValueBundle      = "bundle"
	ValueCLI         = "sepcli"
)
