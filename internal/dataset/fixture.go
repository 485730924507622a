package dataset

var students = [...]Student{
	{ID: 1, Name: "Vaishak", Grade: 8, FavoriteSubject: "Math", Score: 95},
	{ID: 2, Name: "Alex", Grade: 8, FavoriteSubject: "History", Score: 72},
	{ID: 3, Name: "Sam", Grade: 7, FavoriteSubject: "Science", Score: 88},
	{ID: 4, Name: "Jordan", Grade: 9, FavoriteSubject: "Math", Score: 65},
	{ID: 5, Name: "Casey", Grade: 8, FavoriteSubject: "Art", Score: 92},
}

var assignments = [...]Assignment{
	{ID: 101, StudentID: 1, Title: "Algebra Quiz", Score: 95, SubmittedDate: "2023-01-15"},
	{ID: 102, StudentID: 2, Title: "World War Essay", Score: 70, SubmittedDate: "2023-01-20"},
	{ID: 103, StudentID: 1, Title: "Geometry Test", Score: 98, SubmittedDate: "2023-02-10"},
	{ID: 104, StudentID: 3, Title: "Volcano Project", Score: 88, SubmittedDate: "2023-01-25"},
	{ID: 105, StudentID: 5, Title: "Painting", Score: 92, SubmittedDate: "2023-03-05"},
	{ID: 106, StudentID: 4, Title: "Trig Homework", Score: 60, SubmittedDate: "2023-02-15"},
}

// Students returns a fresh copy of the student records.
func Students() []Student {
	out := make([]Student, len(students))
	copy(out, students[:])
	return out
}

// Assignments returns a fresh copy of the assignment records.
func Assignments() []Assignment {
	out := make([]Assignment, len(assignments))
	copy(out, assignments[:])
	return out
}

// Fixture returns the tutorial dataset.
func Fixture() Dataset {
	return Dataset{Students: Students(), Assignments: Assignments()}
}
