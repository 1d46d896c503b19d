package http

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
)

// Form field names
const (
	fieldMonths      = "months"
	fieldMembers     = "members"
	fieldMemberCount = "member_count"
)

func daysField(month types.MonthName) string {
	return "days_" + month.String()
}

func nameField(i int) string {
	return fmt.Sprintf("name_%d", i)
}

func casesField(i int, month types.MonthName) string {
	return fmt.Sprintf("cases_%d_%s", i, month)
}

// decodeForm builds a ReportInput from a submitted data-entry form. It only checks
// that numbers parse; range rules are left to ReportInput.Validate.
func decodeForm(r *http.Request) (*model.ReportInput, error) {
	if err := r.ParseForm(); err != nil {
		return nil, goerr.Wrap(err, "failed to parse form", goerr.T(model.ErrTagInvalidInput))
	}

	input := &model.ReportInput{
		WorkingDays: make(map[types.MonthName]int),
		ClosedCases: make(map[types.MemberName]map[types.MonthName]int),
	}
	for _, m := range r.PostForm[fieldMonths] {
		month := types.MonthName(strings.TrimSpace(m))
		if !month.IsValid() {
			return nil, goerr.New("unrecognized month name", goerr.V("month", m), goerr.T(model.ErrTagInvalidInput))
		}
		input.Months = append(input.Months, month)
	}
	if len(input.Months) != model.SelectedMonthCount {
		return nil, goerr.New("please select exactly 2 months",
			goerr.V("months", input.Months),
			goerr.T(model.ErrTagInvalidInput))
	}

	count, err := parseInt(r.PostForm.Get(fieldMemberCount), "number of FSCs")
	if err != nil {
		return nil, err
	}
	if count < model.MinMembers || count > model.MaxMembers {
		return nil, goerr.New("number of FSCs must be between 1 and 30",
			goerr.V("count", count),
			goerr.T(model.ErrTagInvalidInput))
	}

	for _, month := range input.Months {
		days, err := parseInt(r.PostForm.Get(daysField(month)), fmt.Sprintf("working days for %s", month))
		if err != nil {
			return nil, err
		}
		input.WorkingDays[month] = days
	}

	for i := 0; i < count; i++ {
		member := types.MemberName(r.PostForm.Get(nameField(i))).Normalize()
		input.Members = append(input.Members, member)

		cases := make(map[types.MonthName]int, len(input.Months))
		for _, month := range input.Months {
			n, err := parseInt(r.PostForm.Get(casesField(i, month)), fmt.Sprintf("closed cases of %s in %s", member, month))
			if err != nil {
				return nil, err
			}
			cases[month] = n
		}
		// Duplicate names are reported by Validate; keep the first entry here
		if _, exists := input.ClosedCases[member]; !exists {
			input.ClosedCases[member] = cases
		}
	}

	return input, nil
}

func parseInt(raw, label string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, goerr.New(label+" is required", goerr.T(model.ErrTagInvalidInput))
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, goerr.New(label+" must be a whole number",
			goerr.V("value", raw),
			goerr.T(model.ErrTagInvalidInput))
	}
	return n, nil
}

type monthOption struct {
	Name     types.MonthName
	Selected bool
}

type fieldValue struct {
	Month types.MonthName
	Name  string
	Value string
}

type memberRow struct {
	Field string
	Name  string
	Cases []fieldValue
}

// formView is the data of the data-entry page
type formView struct {
	Error       string
	Calendar    []monthOption
	Months      []types.MonthName
	MemberCount int
	MinMembers  int
	MaxMembers  int
	Days        []fieldValue
	Members     []memberRow
}

// newFormView lays out an empty form for the given months and team size. Values
// come from lookup when it has them, otherwise from defaults.
func newFormView(defaults model.FormDefaults, months []types.MonthName, count int, lookup func(string) string) *formView {
	months = calendarOrder(months)
	count = min(max(count, model.MinMembers), model.MaxMembers)

	view := &formView{
		Months:      months,
		MemberCount: count,
		MinMembers:  model.MinMembers,
		MaxMembers:  model.MaxMembers,
	}

	selected := make(map[types.MonthName]bool, len(months))
	for _, m := range months {
		selected[m] = true
	}
	for _, m := range types.Months() {
		view.Calendar = append(view.Calendar, monthOption{Name: m, Selected: selected[m]})
	}

	value := func(field, fallback string) string {
		if lookup != nil {
			if v := lookup(field); v != "" {
				return v
			}
		}
		return fallback
	}

	for _, m := range months {
		view.Days = append(view.Days, fieldValue{
			Month: m,
			Name:  daysField(m),
			Value: value(daysField(m), strconv.Itoa(defaults.WorkingDays)),
		})
	}

	for i := 0; i < count; i++ {
		name := fmt.Sprintf("FSC%d", i+1)
		if i < len(defaults.Members) {
			name = defaults.Members[i].String()
		}
		row := memberRow{Field: nameField(i), Name: value(nameField(i), name)}
		for _, m := range months {
			row.Cases = append(row.Cases, fieldValue{
				Month: m,
				Name:  casesField(i, m),
				Value: value(casesField(i, m), "0"),
			})
		}
		view.Members = append(view.Members, row)
	}

	return view
}

// formViewFromQuery reads the month selection and team size of GET /
func formViewFromQuery(r *http.Request, defaults model.FormDefaults) *formView {
	q := r.URL.Query()

	months := defaults.Months
	if raw, ok := q[fieldMonths]; ok {
		months = nil
		for _, m := range raw {
			months = append(months, types.MonthName(m))
		}
	}

	count := len(defaults.Members)
	if n, err := strconv.Atoi(q.Get(fieldMembers)); err == nil {
		count = n
	}

	return newFormView(defaults, months, count, nil)
}

// formViewFromSubmission re-renders a rejected submission with the user's values
func formViewFromSubmission(r *http.Request, defaults model.FormDefaults, cause error) *formView {
	var months []types.MonthName
	for _, m := range r.PostForm[fieldMonths] {
		months = append(months, types.MonthName(m))
	}

	count, err := strconv.Atoi(r.PostForm.Get(fieldMemberCount))
	if err != nil {
		count = len(defaults.Members)
	}

	view := newFormView(defaults, months, count, r.PostForm.Get)
	view.Error = cause.Error()
	return view
}

// calendarOrder keeps recognized months in calendar order without duplicates
func calendarOrder(months []types.MonthName) []types.MonthName {
	seen := make(map[types.MonthName]bool)
	var result []types.MonthName
	for _, m := range months {
		if m.IsValid() && !seen[m] {
			seen[m] = true
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		a, _ := result[i].Index()
		b, _ := result[j].Index()
		return a < b
	})
	return result
}
