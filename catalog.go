package sor

// Recognised block identifiers (component B: block catalog). Any
// identifier not in this set is dispatched to the proprietary-block
// path, following the version-agnostic dispatch-by-exact-name pattern
// the teacher uses for its own datatype class switch
// (internal/core/datatype.go's DatatypeClass constants and the
// fallthrough-to-"class_N" default case in DatatypeMessage.String()).
const (
	IdentifierMap              = "Map"
	IdentifierGeneralParams    = "GenParams"
	IdentifierSupplierParams   = "SupParams"
	IdentifierFixedParams      = "FxdParams"
	IdentifierKeyEvents        = "KeyEvents"
	IdentifierLinkParams       = "LnkParams"
	IdentifierDataPoints       = "DataPts"
	IdentifierChecksum         = "Cksum"
	defaultBlockRevision uint16 = 200
)

// knownIdentifiers lists every identifier with a dedicated codec. Any
// other identifier is opaque and handled as a ProprietaryBlock.
var knownIdentifiers = map[string]bool{
	IdentifierMap:            true,
	IdentifierGeneralParams:  true,
	IdentifierSupplierParams: true,
	IdentifierFixedParams:    true,
	IdentifierKeyEvents:      true,
	IdentifierLinkParams:     true,
	IdentifierDataPoints:     true,
	IdentifierChecksum:       true,
}

// isProprietary reports whether identifier falls outside the standard
// catalog and should therefore be captured opaquely.
func isProprietary(identifier string) bool {
	return !knownIdentifiers[identifier]
}
