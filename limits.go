package odf

type Limits struct {
	MaxMembers    int
	MaxMemberSize uint64 // uncompressed bytes of a single member
	MaxTotalSize  uint64 // uncompressed bytes of all members together
}

func defaultLimits() Limits {
	return Limits{
		MaxMembers:    10_000,
		MaxMemberSize: 512 << 20, // 512 MiB
		MaxTotalSize:  2 << 30,   // 2 GiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxMembers == 0 {
		l.MaxMembers = d.MaxMembers
	}
	if l.MaxMemberSize == 0 {
		l.MaxMemberSize = d.MaxMemberSize
	}
	if l.MaxTotalSize == 0 {
		l.MaxTotalSize = d.MaxTotalSize
	}
	return l
}
