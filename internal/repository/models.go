package repository

// Kind identifies what a handle resolves to.
type Kind int

const (
	// KindUnknown covers handles that name bitstreams or nothing at all.
	KindUnknown Kind = iota
	KindItem
	KindCollection
	KindCommunity
)

func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindCollection:
		return "collection"
	case KindCommunity:
		return "community"
	default:
		return "unknown"
	}
}

// Container is the resolved target of a handle.
type Container struct {
	Kind   Kind
	ID     int64
	Handle string
	Name   string
}

// Community is an organizational unit owning collections.
type Community struct {
	ID     int64
	Handle string
	Name   string
}

// Collection groups items and belongs to a community.
type Collection struct {
	ID          int64
	CommunityID int64
	Handle      string
	Name        string
	Position    int
}

// Item is a single archival record.
type Item struct {
	ID           int64
	CollectionID int64
	Handle       string
	Position     int
	ReadOnly     bool

	metadata []MetadataValue
}

// Bundle is a named group of bitstreams attached to an item.
type Bundle struct {
	ID         int64
	ItemID     int64
	Name       string
	Bitstreams []Bitstream
}

// Bitstream is a stored file.
type Bitstream struct {
	ID       int64
	BundleID int64
	Name     string
	Sequence int
	Handle   string
}
