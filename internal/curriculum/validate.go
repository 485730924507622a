package curriculum

import (
	"fmt"
	"sort"
	"strings"
)

// Issue captures a validation problem in a curriculum file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("curriculum validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeSpec trims whitespace and validates a curriculum spec.
func NormalizeSpec(spec Spec) (Spec, error) {
	collector := &issueCollector{}
	if spec.Version == 0 {
		collector.add("version", "is required")
	} else if spec.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", spec.Version))
	}

	if len(spec.Modules) == 0 {
		collector.add("modules", "must include at least one entry")
	}
	seenIDs := map[string]struct{}{}
	for i, module := range spec.Modules {
		prefix := fmt.Sprintf("modules[%d]", i)
		module.ID = strings.TrimSpace(module.ID)
		if module.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, exists := seenIDs[module.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", module.ID))
		} else {
			seenIDs[module.ID] = struct{}{}
		}
		module.Title = strings.TrimSpace(module.Title)
		if module.Title == "" {
			collector.add(prefix+".title", "is required")
		}
		module.Topics = normalizeStringSlice(module.Topics)
		spec.Modules[i] = module
	}

	lessons := make(map[string]Lesson, len(spec.Lessons))
	if len(spec.Lessons) == 0 {
		collector.add("lessons", "must include at least one entry")
	}
	for _, key := range sortedKeys(spec.Lessons) {
		lesson := spec.Lessons[key]
		trimmedKey := strings.TrimSpace(key)
		field := fmt.Sprintf("lessons[%s]", trimmedKey)
		if trimmedKey == "" {
			collector.add("lessons", "lesson key is required")
			continue
		}
		lesson = normalizeLesson(lesson)
		if lesson.Title == "" {
			collector.add(field+".title", "is required")
		}
		if lesson.ExampleQuery == "" {
			collector.add(field+".example_query", "is required")
		}
		lessons[trimmedKey] = lesson
	}
	spec.Lessons = lessons

	spec.DefaultLesson = strings.TrimSpace(spec.DefaultLesson)
	if spec.DefaultLesson == "" {
		collector.add("default_lesson", "is required")
	} else if _, ok := lessons[spec.DefaultLesson]; !ok && len(lessons) > 0 {
		collector.add("default_lesson", fmt.Sprintf("unknown lesson %q", spec.DefaultLesson))
	}

	for i, trigger := range spec.Triggers {
		prefix := fmt.Sprintf("triggers[%d]", i)
		trigger.Lesson = strings.TrimSpace(trigger.Lesson)
		if trigger.Contains == "" {
			collector.add(prefix+".contains", "is required")
		}
		if trigger.Lesson == "" {
			collector.add(prefix+".lesson", "is required")
		} else if _, ok := lessons[trigger.Lesson]; !ok {
			collector.add(prefix+".lesson", fmt.Sprintf("unknown lesson %q", trigger.Lesson))
		}
		spec.Triggers[i] = trigger
	}

	if err := collector.result(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

func normalizeLesson(lesson Lesson) Lesson {
	lesson.Title = strings.TrimSpace(lesson.Title)
	lesson.Analogy = strings.TrimSpace(lesson.Analogy)
	lesson.Explanation = strings.TrimSpace(lesson.Explanation)
	lesson.ExampleQuery = strings.TrimSpace(lesson.ExampleQuery)
	lesson.ExampleExplanation = strings.TrimSpace(lesson.ExampleExplanation)
	lesson.ChallengePrompt = strings.TrimSpace(lesson.ChallengePrompt)
	return lesson
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}

func sortedKeys(lessons map[string]Lesson) []string {
	keys := make([]string, 0, len(lessons))
	for key := range lessons {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
