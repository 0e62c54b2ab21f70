package query

import (
	"sync"

	"github.com/dmitrijs2005/futurama-catalog/internal/models"
	"github.com/dmitrijs2005/futurama-catalog/internal/observable"
	"github.com/dmitrijs2005/futurama-catalog/internal/pagination"
)

// EntitySource is a replaying stream of the full character list.
type EntitySource interface {
	Subscribe(fn func([]models.Character)) (cancel func())
}

// View is one rendered page of the query result.
type View struct {
	Controls   Controls
	Items      []models.Character
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// Pipeline recomputes the query result whenever the entity stream or a
// control changes. Setting the search term, gender or species resets the page
// to 1; changing the sort keeps the current page.
//
// Observers of Results and Views are called synchronously and must not call
// Pipeline setters from inside the callback.
type Pipeline struct {
	engine   *Engine
	pageSize int

	mu       sync.Mutex
	entities []models.Character
	controls Controls
	page     int
	results  []models.Character

	resultSubj *observable.Subject[[]models.Character]
	viewSubj   *observable.Subject[View]

	cancel func()
}

// NewPipeline subscribes to src and computes the first result immediately.
// pageSize is clamped to 1..pagination.MaxPageSize; zero selects the default.
func NewPipeline(src EntitySource, engine *Engine, pageSize int) *Pipeline {
	pageSize = pagination.ClampPageSize(pageSize, pagination.PageSizeConfig{
		Default: pagination.DefaultPageSize,
		Max:     pagination.MaxPageSize,
	})
	p := &Pipeline{
		engine:     engine,
		pageSize:   pageSize,
		controls:   DefaultControls(),
		page:       1,
		results:    []models.Character{},
		resultSubj: observable.NewSubject([]models.Character{}),
		viewSubj:   observable.NewSubject(View{Controls: DefaultControls(), Items: []models.Character{}, Page: 1, PageSize: pageSize}),
	}
	p.cancel = src.Subscribe(func(items []models.Character) {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.entities = items
		p.recomputeLocked()
	})
	return p
}

// Close detaches the pipeline from its entity source.
func (p *Pipeline) Close() {
	p.cancel()
}

// Results streams the full filtered and sorted list.
func (p *Pipeline) Results() observable.Observable[[]models.Character] {
	return observable.ReadOnly(p.resultSubj, models.CloneAll)
}

// Views streams the current page.
func (p *Pipeline) Views() observable.Observable[View] {
	return observable.ReadOnly(p.viewSubj, cloneView)
}

// View returns the latest page.
func (p *Pipeline) View() View {
	return cloneView(p.viewSubj.Value())
}

func cloneView(v View) View {
	v.Items = models.CloneAll(v.Items)
	return v
}

// Controls returns the current control values.
func (p *Pipeline) Controls() Controls {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.controls
}

func (p *Pipeline) SetSearchTerm(term string) {
	p.update(true, func(c *Controls) { c.SearchTerm = term })
}

func (p *Pipeline) SetGenderFilter(gender string) {
	p.update(true, func(c *Controls) { c.GenderFilter = gender })
}

func (p *Pipeline) SetSpeciesFilter(species string) {
	p.update(true, func(c *Controls) { c.SpeciesFilter = species })
}

// SetSort changes the sort field and direction. The page is kept.
func (p *Pipeline) SetSort(field Field, dir Direction) {
	p.update(false, func(c *Controls) {
		c.SortField = field
		c.SortDirection = dir
	})
}

// ClearFilters restores DefaultControls and returns to page 1.
func (p *Pipeline) ClearFilters() {
	p.update(true, func(c *Controls) { *c = DefaultControls() })
}

// SetPage moves to page n. Out-of-range pages render empty.
func (p *Pipeline) SetPage(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = n
	p.publishViewLocked()
}

// NextPage advances one page unless already on the last one.
func (p *Pipeline) NextPage() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.page >= pagination.TotalPages(len(p.results), p.pageSize) {
		return false
	}
	p.page++
	p.publishViewLocked()
	return true
}

// PrevPage goes back one page unless already on the first one.
func (p *Pipeline) PrevPage() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.page <= 1 {
		return false
	}
	p.page--
	p.publishViewLocked()
	return true
}

func (p *Pipeline) update(resetPage bool, fn func(*Controls)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.controls)
	if resetPage {
		p.page = 1
	}
	p.recomputeLocked()
}

func (p *Pipeline) recomputeLocked() {
	p.results = p.engine.Apply(p.entities, p.controls)
	p.resultSubj.Publish(p.results)
	p.publishViewLocked()
}

func (p *Pipeline) publishViewLocked() {
	p.viewSubj.Publish(View{
		Controls:   p.controls,
		Items:      pagination.Window(p.results, p.page, p.pageSize),
		Page:       p.page,
		PageSize:   p.pageSize,
		Total:      len(p.results),
		TotalPages: pagination.TotalPages(len(p.results), p.pageSize),
	})
}
