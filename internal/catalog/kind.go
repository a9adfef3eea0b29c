package catalog

import "strings"

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is a primitive storage kind of the table store.
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	KindASCII     // ascii
	KindBigint    // bigint
	KindBlob      // blob
	KindBoolean   // boolean
	KindCounter   // counter
	KindDate      // date
	KindDecimal   // decimal
	KindDouble    // double
	KindDuration  // duration
	KindFloat     // float
	KindInet      // inet
	KindInt       // int
	KindSmallint  // smallint
	KindText      // text
	KindTime      // time
	KindTimestamp // timestamp
	KindTimeUUID  // timeuuid
	KindTinyint   // tinyint
	KindUUID      // uuid
	KindVarchar   // varchar
	KindVarint    // varint

	// KindTotal is the number of values reserved for kinds, including the zero value.
	KindTotal = int(iota)
)

// ValidatorPackage is the package of the store's storage validator classes.
const ValidatorPackage = "org.apache.cassandra.db.marshal."

var validatorNames = [KindTotal]string{
	KindASCII:     "AsciiType",
	KindBigint:    "LongType",
	KindBlob:      "BytesType",
	KindBoolean:   "BooleanType",
	KindCounter:   "CounterColumnType",
	KindDate:      "SimpleDateType",
	KindDecimal:   "DecimalType",
	KindDouble:    "DoubleType",
	KindDuration:  "DurationType",
	KindFloat:     "FloatType",
	KindInet:      "InetAddressType",
	KindInt:       "Int32Type",
	KindSmallint:  "ShortType",
	KindText:      "UTF8Type",
	KindTime:      "TimeType",
	KindTimestamp: "TimestampType",
	KindTimeUUID:  "TimeUUIDType",
	KindTinyint:   "ByteType",
	KindUUID:      "UUIDType",
	KindVarchar:   "UTF8Type",
	KindVarint:    "IntegerType",
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// Validator returns the fully qualified storage validator name of the kind,
// e.g. "org.apache.cassandra.db.marshal.FloatType".
func (k Kind) Validator() string {
	if !k.IsValid() {
		return ""
	}

	return ValidatorPackage + validatorNames[k]
}

// IsText reports whether k stores character data.
func (k Kind) IsText() bool {
	switch k {
	default:
		return false
	case KindASCII, KindText, KindVarchar:
		return true
	}
}

// IsInteger reports whether k stores whole numbers. Counters are excluded:
// they only index as long.
func (k Kind) IsInteger() bool {
	switch k {
	default:
		return false
	case KindTinyint, KindSmallint, KindInt, KindBigint, KindVarint:
		return true
	}
}

// IsNumber reports whether k stores integer or decimal numbers.
func (k Kind) IsNumber() bool {
	switch k {
	default:
		return k.IsInteger()
	case KindFloat, KindDouble, KindDecimal:
		return true
	}
}

// IsTemporal reports whether k stores a point in time or a time of day.
func (k Kind) IsTemporal() bool {
	switch k {
	default:
		return false
	case KindDate, KindTime, KindTimestamp, KindTimeUUID:
		return true
	}
}

// AllKinds returns every declared kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, KindTotal-1)
	for k := Kind(1); int(k) < KindTotal; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

// KindByName looks a primitive kind up by its type name. Names are case-insensitive.
func KindByName(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range AllKinds() {
		if k.String() == name {
			return k, true
		}
	}

	return 0, false
}
