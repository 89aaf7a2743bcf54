package index

// AddManifestURL appends a manifest URL to the document's URL list and
// reports whether a new element was actually appended. An items list wins
// over a manifests list when both are present; a document with neither
// gets an items list initialized with the one record. Equality is exact
// string match — no URL normalization, so trailing slashes and scheme
// case are distinct.
func (i *Index) AddManifestURL(url string) bool {
	if i.Items != nil {
		for _, it := range i.Items {
			if it.ManifestURL == url {
				return false
			}
		}
		i.Items = append(i.Items, Item{ManifestURL: url})
		return true
	}
	if i.Manifests != nil {
		for _, m := range i.Manifests {
			if m == url {
				return false
			}
		}
		i.Manifests = append(i.Manifests, url)
		return true
	}
	// No supported list key present; default to items.
	i.Items = []Item{{ManifestURL: url}}
	return true
}

// AddEntry appends a {path, base_url} record to the entries list,
// creating the list if absent. Identity is the (path, base_url) pair:
// the same path under a different base URL is a distinct entry. Reports
// whether a new record was appended.
func (i *Index) AddEntry(path, baseURL string) bool {
	for _, e := range i.Entries {
		if e.Path == path && e.BaseURL == baseURL {
			return false
		}
	}
	i.Entries = append(i.Entries, Entry{Path: path, BaseURL: baseURL})
	return true
}
