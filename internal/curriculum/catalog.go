package curriculum

import "strings"

// Catalog answers module and lesson lookups over a normalized spec.
type Catalog struct {
	modules       []Module
	byID          map[string]int
	lessons       map[string]Lesson
	triggers      []Trigger
	defaultLesson string
}

// NewCatalog builds a catalog from a spec that already passed NormalizeSpec.
func NewCatalog(spec Spec) *Catalog {
	catalog := &Catalog{
		modules:       make([]Module, len(spec.Modules)),
		byID:          make(map[string]int, len(spec.Modules)),
		lessons:       make(map[string]Lesson, len(spec.Lessons)),
		triggers:      append([]Trigger(nil), spec.Triggers...),
		defaultLesson: spec.DefaultLesson,
	}
	for i, module := range spec.Modules {
		module.Topics = append([]string(nil), module.Topics...)
		catalog.modules[i] = module
		catalog.byID[module.ID] = i
	}
	for key, lesson := range spec.Lessons {
		catalog.lessons[key] = lesson
	}
	return catalog
}

// Modules returns the curriculum in declared order.
func (c *Catalog) Modules() []Module {
	out := make([]Module, len(c.modules))
	for i, module := range c.modules {
		module.Topics = append([]string(nil), module.Topics...)
		out[i] = module
	}
	return out
}

// ModuleByID returns the module with the given id.
func (c *Catalog) ModuleByID(id string) (Module, bool) {
	idx, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Module{}, false
	}
	module := c.modules[idx]
	module.Topics = append([]string(nil), module.Topics...)
	return module, true
}

// LessonKey resolves a module title to a lesson key. Every trigger whose
// substring occurs in the title is applied in order, so the last match wins.
// Titles matching nothing resolve to the default lesson.
func (c *Catalog) LessonKey(moduleTitle string) string {
	key := c.defaultLesson
	for _, trigger := range c.triggers {
		if strings.Contains(moduleTitle, trigger.Contains) {
			key = trigger.Lesson
		}
	}
	if _, ok := c.lessons[key]; !ok {
		return c.defaultLesson
	}
	return key
}

// Lookup returns the lesson content for a module title. It never fails.
func (c *Catalog) Lookup(moduleTitle string) Lesson {
	return c.lessons[c.LessonKey(moduleTitle)]
}
