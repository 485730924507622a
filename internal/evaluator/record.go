package evaluator

import "github.com/snake14v/SQL-LEARNX/internal/dataset"

// Record is a working-set row. Fields keep insertion order so a projection of
// every field lists table columns first and computed columns after them.
type Record struct {
	fields []string
	values map[string]any
}

func newRecord(capacity int) Record {
	return Record{
		fields: make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

// Get returns the value of field and whether the record has it.
func (r Record) Get(field string) (any, bool) {
	value, ok := r.values[field]
	return value, ok
}

// Fields returns the field names in insertion order.
func (r Record) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Set assigns field, appending it to the field order when new.
func (r *Record) Set(field string, value any) {
	if r.values == nil {
		r.values = map[string]any{}
	}
	if _, ok := r.values[field]; !ok {
		r.fields = append(r.fields, field)
	}
	r.values[field] = value
}

func studentRecord(student dataset.Student) Record {
	rec := newRecord(8)
	rec.Set("id", student.ID)
	rec.Set("name", student.Name)
	rec.Set("grade", student.Grade)
	rec.Set("favorite_subject", student.FavoriteSubject)
	rec.Set("score", student.Score)
	return rec
}

func assignmentRecord(assignment dataset.Assignment) Record {
	rec := newRecord(8)
	rec.Set("id", assignment.ID)
	rec.Set("student_id", assignment.StudentID)
	rec.Set("title", assignment.Title)
	rec.Set("score", assignment.Score)
	rec.Set("submitted_date", assignment.SubmittedDate)
	return rec
}

func joinedRecord(student dataset.Student, assignment dataset.Assignment) Record {
	rec := newRecord(6)
	rec.Set("student_name", student.Name)
	rec.Set("assignment_title", assignment.Title)
	rec.Set("score", assignment.Score)
	return rec
}

// number reads field as a float when it holds a numeric value.
func (r Record) number(field string) (float64, bool) {
	value, ok := r.values[field]
	if !ok {
		return 0, false
	}
	switch typed := value.(type) {
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case float64:
		return typed, true
	default:
		return 0, false
	}
}

// text reads field as a non-empty string.
func (r Record) text(field string) (string, bool) {
	value, ok := r.values[field].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// truthy reports whether field holds a value other than nil, zero, or "".
func (r Record) truthy(field string) bool {
	switch typed := r.values[field].(type) {
	case nil:
		return false
	case string:
		return typed != ""
	case int:
		return typed != 0
	case int64:
		return typed != 0
	case float64:
		return typed != 0
	case bool:
		return typed
	default:
		return true
	}
}

// score is the sort key used by ranking and ordering; rows without a score sort as zero.
func (r Record) score() float64 {
	value, _ := r.number("score")
	return value
}
