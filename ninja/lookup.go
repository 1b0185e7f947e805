package ninja

// Lookup tables are built once per run from a fully paginated fetch and read
// only afterwards. Ids are unique by source-system contract; if that is ever
// violated the last entry wins.

func OrganizationNames(orgs []Organization) map[int]string {
	m := make(map[int]string, len(orgs))
	for _, o := range orgs {
		m[o.ID] = o.Name
	}
	return m
}

func PolicyNames(policies []Policy) map[int]string {
	m := make(map[int]string, len(policies))
	for _, p := range policies {
		m[p.ID] = p.Name
	}
	return m
}

func RoleNames(roles []NodeRole) map[int]string {
	m := make(map[int]string, len(roles))
	for _, r := range roles {
		m[r.ID] = r.Name
	}
	return m
}

func LocationNames(locations []Location) map[int]string {
	m := make(map[int]string, len(locations))
	for _, l := range locations {
		m[l.ID] = l.Name
	}
	return m
}
