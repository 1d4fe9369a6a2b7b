package libdiff

type Kind int

const (
	Equal Kind = iota
	Insert
	Delete
	Replace
)

func (k Kind) String() string {
	switch k {
	case Equal:
		return "="
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	}
	return "?"
}

const (
	delOpen  = "{-"
	delClose = "-}"
	insOpen  = "{+"
	insClose = "+}"
)
