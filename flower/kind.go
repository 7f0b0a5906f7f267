package flower

// Kind names one of the flower variants the shop sells.
type Kind uint8

const (
	Unknown Kind = iota
	Rose
	Tulip
	Lily
)

var kindNames = map[Kind]string{
	Rose:  "rose",
	Tulip: "tulip",
	Lily:  "lily",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) Equal(other Kind) bool {
	return k == other
}

func (k Kind) Hash() int {
	return int(k)
}

func kindOf(name string) Kind {
	for k, n := range kindNames {
		if n == name {
			return k
		}
	}
	return Unknown
}
