package xreserved

// Block 是一个保留地址块。
type Block struct {
	// CIDR 子网，支持 "a.b.c.d/n" 与 "a.b.c.d/m.m.m.m"
	CIDR string `koanf:"cidr" json:"cidr"`

	// Name IANA 特殊用途地址表中的名称，如 "private-use"
	Name string `koanf:"name" json:"name,omitempty"`

	// RFC 定义该地址块的 RFC 编号，如 "RFC 1918"
	RFC string `koanf:"rfc" json:"rfc,omitempty"`
}

// String 返回块的 CIDR。
func (b Block) String() string {
	return b.CIDR
}

// ianaBlocks 是默认注册表的保留块，顺序即匹配优先级。
var ianaBlocks = []Block{
	{CIDR: "0.0.0.0/8", Name: "this-network", RFC: "RFC 791"},
	{CIDR: "10.0.0.0/8", Name: "private-use", RFC: "RFC 1918"},
	{CIDR: "127.0.0.0/8", Name: "loopback", RFC: "RFC 1122"},
	{CIDR: "169.254.0.0/16", Name: "link-local", RFC: "RFC 3927"},
	{CIDR: "172.16.0.0/12", Name: "private-use", RFC: "RFC 1918"},
	{CIDR: "192.0.0.0/29", Name: "ipv4-service-continuity", RFC: "RFC 7335"},
	{CIDR: "192.0.0.170/31", Name: "nat64-dns64-discovery", RFC: "RFC 7050"},
	{CIDR: "192.0.2.0/24", Name: "documentation-test-net-1", RFC: "RFC 5737"},
	{CIDR: "192.168.0.0/16", Name: "private-use", RFC: "RFC 1918"},
	{CIDR: "198.18.0.0/15", Name: "benchmarking", RFC: "RFC 2544"},
	{CIDR: "198.51.100.0/24", Name: "documentation-test-net-2", RFC: "RFC 5737"},
	{CIDR: "203.0.113.0/24", Name: "documentation-test-net-3", RFC: "RFC 5737"},
	{CIDR: "240.0.0.0/4", Name: "reserved", RFC: "RFC 1112"},
	{CIDR: "255.255.255.255/32", Name: "limited-broadcast", RFC: "RFC 919"},
}

// DefaultBlocks 返回默认保留块列表的副本。
func DefaultBlocks() []Block {
	out := make([]Block, len(ianaBlocks))
	copy(out, ianaBlocks)
	return out
}
