package match

import (
	"index-schema/internal/catalog"
	"index-schema/internal/mapping"
)

// kindSet is a bit set of primitive kinds.
type kindSet uint64

func setOf(kinds ...catalog.Kind) kindSet {
	var s kindSet
	for _, k := range kinds {
		s |= 1 << uint(k)
	}

	return s
}

// kindsWhere returns the set of kinds matching pred.
func kindsWhere(pred func(catalog.Kind) bool) kindSet {
	var s kindSet
	for _, k := range catalog.AllKinds() {
		if pred(k) {
			s |= 1 << uint(k)
		}
	}

	return s
}

func (s kindSet) has(k catalog.Kind) bool {
	return k.IsValid() && s&(1<<uint(k)) != 0
}

func (s kindSet) union(other kindSet) kindSet {
	return s | other
}

func (s kindSet) without(k catalog.Kind) kindSet {
	return s &^ (1 << uint(k))
}

var (
	textKinds     = kindsWhere(catalog.Kind.IsText)
	integerKinds  = kindsWhere(catalog.Kind.IsInteger)
	numberKinds   = kindsWhere(catalog.Kind.IsNumber)
	temporalKinds = kindsWhere(catalog.Kind.IsTemporal)
	uuidKinds     = setOf(catalog.KindUUID, catalog.KindTimeUUID)
	dateKinds     = temporalKinds.union(setOf(catalog.KindInt, catalog.KindBigint))
)

// compatibility lists, per mapper type, the storage kinds it can index.
// Every combination not listed is incompatible; there is no coercion beyond this table.
var compatibility = [mapping.SemanticTotal]kindSet{
	mapping.String: textKinds.union(numberKinds).union(uuidKinds).union(setOf(
		catalog.KindBoolean, catalog.KindInet)).union(temporalKinds),
	mapping.Text:       textKinds,
	mapping.Integer:    textKinds.union(numberKinds).union(temporalKinds.without(catalog.KindTimeUUID)),
	mapping.Long:       textKinds.union(numberKinds).union(temporalKinds.without(catalog.KindTimeUUID)).union(setOf(catalog.KindCounter)),
	mapping.Float:      textKinds.union(numberKinds),
	mapping.Double:     textKinds.union(numberKinds),
	mapping.Boolean:    textKinds.union(setOf(catalog.KindBoolean)),
	mapping.Blob:       textKinds.union(setOf(catalog.KindBlob)),
	mapping.Date:       textKinds.union(dateKinds),
	mapping.Inet:       textKinds.union(setOf(catalog.KindInet)),
	mapping.UUID:       textKinds.union(uuidKinds),
	mapping.BigDecimal: textKinds.union(numberKinds),
	mapping.BigInteger: textKinds.union(integerKinds),
}

// IsCompatible reports whether a mapper of the declared type can index
// values of the terminal storage type. Wrappers are stripped first; a
// non-primitive terminal is never compatible.
func IsCompatible(terminal catalog.StorageType, declared mapping.SemanticType) bool {
	t := terminal.Unwrap()
	if !t.IsPrimitive() || !declared.IsValid() {
		return false
	}

	return compatibility[declared].has(t.Kind)
}

// SupportedKinds returns the storage kinds a mapper type accepts, in kind order.
func SupportedKinds(declared mapping.SemanticType) []catalog.Kind {
	if !declared.IsValid() {
		return nil
	}

	var kinds []catalog.Kind

	for _, k := range catalog.AllKinds() {
		if compatibility[declared].has(k) {
			kinds = append(kinds, k)
		}
	}

	return kinds
}

// MapperTypesFor returns the mapper types able to index kind, in declaration order.
func MapperTypesFor(kind catalog.Kind) []mapping.SemanticType {
	var types []mapping.SemanticType

	for _, st := range mapping.AllSemanticTypes() {
		if compatibility[st].has(kind) {
			types = append(types, st)
		}
	}

	return types
}

// CompatibilityResult contains detailed information about a compatibility check.
type CompatibilityResult struct {
	Compatible bool
	// StorageType is the validator name of the terminal type.
	StorageType string
	Mapper      mapping.SemanticType
	// Alternatives are the mapper types that would accept the storage type.
	Alternatives []mapping.SemanticType
}

// Check is IsCompatible with the details needed for a diagnostic.
func Check(terminal catalog.StorageType, declared mapping.SemanticType) CompatibilityResult {
	t := terminal.Unwrap()

	res := CompatibilityResult{
		Compatible:  IsCompatible(t, declared),
		StorageType: t.Validator(),
		Mapper:      declared,
	}

	if !res.Compatible && t.IsPrimitive() {
		res.Alternatives = MapperTypesFor(t.Kind)
	}

	return res
}
