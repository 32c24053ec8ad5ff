package categorize

import (
	"reflect"
	"testing"

	"github.com/rkawale/mediawatch/app/database"
)

func testDepartments() []database.Department {
	return []database.Department{
		{ID: "dept-pwd", Name: "Public Works", Keywords: []string{"road", "bridge", "pothole"}},
		{ID: "dept-health", Name: "Health", Keywords: []string{"hospital", "doctor", "vaccine"}},
		{ID: "dept-transport", Name: "Transport", Keywords: []string{"bus", "metro", "traffic"}},
		{ID: "dept-edu", Name: "Education", Keywords: []string{"school", "teacher", "exam"}},
	}
}

func TestAssignTitleWeighting(t *testing.T) {
	// "hospital" in the title (3 points) beats "road" in the body (1 point)
	assignment := Assign(testDepartments(), "New hospital opens", "The access road is still unfinished.")

	if assignment.PrimaryDepartmentID != "dept-health" {
		t.Errorf("Expected primary dept-health, got %s", assignment.PrimaryDepartmentID)
	}
	if len(assignment.Related) != 1 || assignment.Related[0] != "dept-pwd" {
		t.Errorf("Expected related [dept-pwd], got %v", assignment.Related)
	}
}

func TestAssignNoMatch(t *testing.T) {
	assignment := Assign(testDepartments(), "Cricket team wins series", "The final was played overseas.")

	if assignment.PrimaryDepartmentID != "" {
		t.Errorf("Expected no primary department, got %s", assignment.PrimaryDepartmentID)
	}
	if len(assignment.Related) != 0 {
		t.Errorf("Expected no related departments, got %v", assignment.Related)
	}
}

func TestAssignRelatedCap(t *testing.T) {
	title := "Road to hospital blocked by bus strike near school"
	assignment := Assign(testDepartments(), title, "")

	if assignment.PrimaryDepartmentID == "" {
		t.Error("Expected a primary department")
	}
	if len(assignment.Related) > 2 {
		t.Errorf("Expected at most 2 related departments, got %v", assignment.Related)
	}
}

func TestAssignDeterministic(t *testing.T) {
	// All four departments score identically; ties break by department id
	title := "road hospital bus school"
	first := Assign(testDepartments(), title, "")

	for i := 0; i < 5; i++ {
		again := Assign(testDepartments(), title, "")
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Assignment is not deterministic: %+v vs %+v", first, again)
		}
	}

	if first.PrimaryDepartmentID != "dept-edu" {
		t.Errorf("Expected tie broken by department id, got %s", first.PrimaryDepartmentID)
	}
	expected := []string{"dept-health", "dept-pwd"}
	if !reflect.DeepEqual(first.Related, expected) {
		t.Errorf("Expected related %v, got %v", expected, first.Related)
	}
}
