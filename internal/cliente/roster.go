package cliente

import "strings"

// PageSizes are the page size options offered by the list view.
var PageSizes = []int{10, 20, 30}

// Filter holds the two list-view filter values. Empty matches everything.
type Filter struct {
	Nombre         string
	Identificacion string
}

func (f Filter) matches(r Record) bool {
	if q := strings.ToLower(f.Nombre); q != "" {
		if !strings.Contains(strings.ToLower(r.FullName()), q) {
			return false
		}
	}
	if q := strings.ToLower(f.Identificacion); q != "" {
		// a record without identificacion never matches a non-empty filter
		if r.Identificacion == "" || !strings.Contains(strings.ToLower(r.Identificacion), q) {
			return false
		}
	}
	return true
}

// Roster is the in-memory snapshot of the clientes loaded for the session,
// plus the list-view state: staged and applied filters and pagination.
// Typing a filter stages it; it narrows the list only on Search. Clearing a
// staged filter to empty applies at once: removing a filter is immediate,
// adding one is deferred.
type Roster struct {
	records  []Record
	staged   Filter
	applied  Filter
	page     int
	pageSize int
}

func NewRoster() *Roster {
	return &Roster{pageSize: PageSizes[0]}
}

// Replace swaps in a freshly fetched snapshot. Filters and page survive;
// filtering never triggers a new fetch.
func (r *Roster) Replace(records []Record) {
	r.records = records
}

// StageNombre records the typed name filter. Clearing it resets the applied
// value and the page immediately.
func (r *Roster) StageNombre(v string) {
	r.staged.Nombre = v
	if v == "" {
		r.applied.Nombre = ""
		r.page = 0
	}
}

// StageIdentificacion records the typed identification filter, with the same
// immediate-clear rule.
func (r *Roster) StageIdentificacion(v string) {
	r.staged.Identificacion = v
	if v == "" {
		r.applied.Identificacion = ""
		r.page = 0
	}
}

// Search commits the staged filters and rewinds to the first page.
func (r *Roster) Search() {
	r.applied = r.staged
	r.page = 0
}

func (r *Roster) Staged() Filter  { return r.staged }
func (r *Roster) Applied() Filter { return r.applied }

// SetPageSize switches to one of PageSizes and rewinds to the first page.
// Unknown sizes are ignored.
func (r *Roster) SetPageSize(n int) {
	for _, s := range PageSizes {
		if n == s {
			r.pageSize = n
			r.page = 0
			return
		}
	}
}

func (r *Roster) PageSize() int  { return r.pageSize }
func (r *Roster) PageIndex() int { return r.page }

func (r *Roster) maxPage() int {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return (total - 1) / r.pageSize
}

// SetPage moves to the given page, clamped to the filtered range.
func (r *Roster) SetPage(n int) {
	if n < 0 {
		n = 0
	}
	if m := r.maxPage(); n > m {
		n = m
	}
	r.page = n
}

func (r *Roster) NextPage() { r.SetPage(r.page + 1) }
func (r *Roster) PrevPage() { r.SetPage(r.page - 1) }

func (r *Roster) filtered() []Record {
	res := make([]Record, 0, len(r.records))
	for _, rec := range r.records {
		if r.applied.matches(rec) {
			res = append(res, rec)
		}
	}
	return res
}

// Total is the filtered count, the number the pager reports.
func (r *Roster) Total() int {
	n := 0
	for _, rec := range r.records {
		if r.applied.matches(rec) {
			n++
		}
	}
	return n
}

// Page returns the slice of the filtered roster for the current page.
func (r *Roster) Page() []Record {
	f := r.filtered()
	lo := r.page * r.pageSize
	if lo >= len(f) {
		return nil
	}
	hi := lo + r.pageSize
	if hi > len(f) {
		hi = len(f)
	}
	return f[lo:hi]
}

// Remove drops a record from the local snapshot only. The backend delete
// endpoint exists but is deliberately never called.
func (r *Roster) Remove(id string) bool {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return true
		}
	}
	return false
}

// Len is the unfiltered snapshot size.
func (r *Roster) Len() int { return len(r.records) }
