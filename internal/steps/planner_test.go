package steps

import (
	"reflect"
	"testing"

	"github.com/arkodeep/healthtriage/internal/extract"
	"github.com/arkodeep/healthtriage/internal/vocab"
)

func testPlanner(t *testing.T) *Planner {
	t.Helper()
	v, err := vocab.New(
		[]string{"headache", "nausea", "chest pain", "itching", "skin rash", "cough"},
		[]string{"headache", "nausea", "chest_pain", "itching", "skin_rash", "cough"},
		[]string{"Migraine", "Fungal infection"},
	)
	if err != nil {
		t.Fatal(err)
	}
	return NewPlanner(extract.NewMatcher(v, extract.DefaultConfig()), DefaultConfig())
}

func stepByID(t *testing.T, plan []Step, id string) Step {
	t.Helper()
	for _, s := range plan {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("no step %q in plan", id)
	return Step{}
}

func TestPlan_Deterministic(t *testing.T) {
	p := testPlanner(t)
	complaint := "sudden chest pain and a bad cough since this morning"
	a := p.Plan(complaint)
	b := p.Plan(complaint)
	if !reflect.DeepEqual(a, b) {
		t.Error("two plans for identical complaint differ")
	}
}

func TestPlan_AcuteDuration(t *testing.T) {
	p := testPlanner(t)
	plan := p.Plan("sudden chest pain since this morning")
	d := stepByID(t, plan, "duration")
	if !reflect.DeepEqual(d.Options, acuteDurations) {
		t.Errorf("duration options = %v, want acute preset", d.Options)
	}
}

func TestPlan_ChronicDuration(t *testing.T) {
	p := testPlanner(t)
	plan := p.Plan("I've had this back pain for years")
	d := stepByID(t, plan, "duration")
	if !reflect.DeepEqual(d.Options, chronicDurations) {
		t.Errorf("duration options = %v, want chronic preset", d.Options)
	}
}

func TestPlan_AcuteWinsWhenBothPresent(t *testing.T) {
	p := testPlanner(t)
	plan := p.Plan("chronic cough but sudden fever last night")
	d := stepByID(t, plan, "duration")
	if !reflect.DeepEqual(d.Options, acuteDurations) {
		t.Errorf("duration options = %v, want acute preset (checked first)", d.Options)
	}
}

func TestPlan_UnspecifiedDuration(t *testing.T) {
	p := testPlanner(t)
	plan := p.Plan("headache and nausea")
	d := stepByID(t, plan, "duration")
	if !reflect.DeepEqual(d.Options, generalDurations) {
		t.Errorf("duration options = %v, want general preset", d.Options)
	}
}

func TestPlan_ChestSuggestedFirst(t *testing.T) {
	p := testPlanner(t)
	plan := p.Plan("sudden chest pain since this morning")
	b := stepByID(t, plan, "body_areas")

	if len(b.Suggested) == 0 || b.Suggested[0] != "Chest" {
		t.Errorf("suggested = %v, want Chest first", b.Suggested)
	}
	if b.Options[0] != "Chest" {
		t.Errorf("options = %v, want Chest ahead of non-suggested areas", b.Options)
	}
}

func TestPlan_BodyAreaDefaultsWhenNoKeyword(t *testing.T) {
	p := testPlanner(t)
	plan := p.Plan("feeling generally unwell lately")
	b := stepByID(t, plan, "body_areas")
	if !reflect.DeepEqual(b.Suggested, []string{"Head", "Chest", "Abdomen"}) {
		t.Errorf("suggested = %v, want the fixed default subset", b.Suggested)
	}
}

func TestPlan_CatalogueSupersets(t *testing.T) {
	p := testPlanner(t)
	plan := p.Plan("sudden chest pain and diabetes runs in my family")

	contains := func(list []string, want string) bool {
		for _, v := range list {
			if v == want {
				return true
			}
		}
		return false
	}

	b := stepByID(t, plan, "body_areas")
	for _, a := range BodyAreaCatalogue {
		if !contains(b.Options, a.Area) {
			t.Errorf("body areas missing catalogue entry %q", a.Area)
		}
	}
	pre := stepByID(t, plan, "preexisting")
	for _, c := range PreexistingConditions {
		if !contains(pre.Options, c) {
			t.Errorf("preexisting missing catalogue entry %q", c)
		}
	}
	fam := stepByID(t, plan, "family_history")
	for _, f := range FamilyHistoryOptions {
		if !contains(fam.Options, f) {
			t.Errorf("family history missing catalogue entry %q", f)
		}
	}
	ls := stepByID(t, plan, "lifestyle")
	if len(ls.Groups) != len(LifestyleFactors) {
		t.Errorf("lifestyle shows %d factors, want all %d", len(ls.Groups), len(LifestyleFactors))
	}
}

func TestPlan_LifestyleRelevantFirst(t *testing.T) {
	p := testPlanner(t)
	plan := p.Plan("can't sleep and drinking too much alcohol")
	ls := stepByID(t, plan, "lifestyle")
	if ls.Groups[0].Key != "sleep" || ls.Groups[1].Key != "alcohol" {
		t.Errorf("lifestyle order = %v, want sleep then alcohol first", ls.Groups)
	}
}

func TestPlan_LifestyleDefaults(t *testing.T) {
	p := testPlanner(t)
	plan := p.Plan("mild rash on my arm") // "arm" hits body areas only
	ls := stepByID(t, plan, "lifestyle")
	if !reflect.DeepEqual(ls.Suggested, []string{"sleep", "stress", "diet"}) {
		t.Errorf("lifestyle suggested = %v, want the default factors", ls.Suggested)
	}
}

func TestPlan_SymptomCategoriesRankedAndAutoSelected(t *testing.T) {
	p := testPlanner(t)
	plan := p.Plan("I have a severe headache and nausea")
	s := stepByID(t, plan, "symptoms")

	if len(s.Categories) != DefaultConfig().TopCategories {
		t.Fatalf("got %d categories, want %d", len(s.Categories), DefaultConfig().TopCategories)
	}
	names := make([]string, len(s.Categories))
	for i, c := range s.Categories {
		names[i] = c.Name
	}
	// Both complaint symptoms are literal + extracted, so their categories
	// must rank in the top two.
	topTwo := map[string]bool{names[0]: true, names[1]: true}
	if !topTwo["Head & Neurological"] || !topTwo["Digestive"] {
		t.Errorf("top categories = %v, want Head & Neurological and Digestive leading", names)
	}

	auto := map[string]bool{}
	for _, a := range s.AutoSelected {
		auto[a] = true
	}
	if !auto["headache"] || !auto["nausea"] {
		t.Errorf("auto-selected = %v, want headache and nausea", s.AutoSelected)
	}
}

func TestPlan_PreexistingDetection(t *testing.T) {
	p := testPlanner(t)
	plan := p.Plan("I am diabetic, high sugar for years")
	pre := stepByID(t, plan, "preexisting")
	if len(pre.Suggested) == 0 || pre.Suggested[0] != "Diabetes" {
		t.Errorf("suggested = %v, want Diabetes", pre.Suggested)
	}
}

func TestSymptomsForArea(t *testing.T) {
	got := SymptomsForArea("Chest")
	want := []string{"chest pain", "breathlessness", "cough"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SymptomsForArea(Chest) = %v, want %v", got, want)
	}
	if SymptomsForArea("Nowhere") != nil {
		t.Error("unknown area should return nil")
	}
}
