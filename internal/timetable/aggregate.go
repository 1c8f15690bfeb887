package timetable

import (
	"fmt"
	"sort"
)

// aggregator folds the assignment stream into the three read views plus the
// warnings list.
type aggregator struct {
	classSummary   map[string]map[Day][]Assignment
	teacherSummary map[Teacher]map[Day][]Assignment
	dayGrid        map[Day]map[Period][]Assignment
	warnings       []string
	sortOps        int
}

func newAggregator() *aggregator {
	return &aggregator{
		classSummary:   make(map[string]map[Day][]Assignment),
		teacherSummary: make(map[Teacher]map[Day][]Assignment),
		dayGrid:        make(map[Day]map[Period][]Assignment),
		warnings:       []string{},
	}
}

func (a *aggregator) add(asg Assignment) {
	if a.classSummary[asg.ClassID] == nil {
		a.classSummary[asg.ClassID] = make(map[Day][]Assignment)
	}
	a.classSummary[asg.ClassID][asg.Day] = append(a.classSummary[asg.ClassID][asg.Day], asg)

	if a.teacherSummary[asg.Teacher] == nil {
		a.teacherSummary[asg.Teacher] = make(map[Day][]Assignment)
	}
	a.teacherSummary[asg.Teacher][asg.Day] = append(a.teacherSummary[asg.Teacher][asg.Day], asg)

	if a.dayGrid[asg.Day] == nil {
		a.dayGrid[asg.Day] = make(map[Period][]Assignment)
	}
	a.dayGrid[asg.Day][asg.Period] = append(a.dayGrid[asg.Day][asg.Period], asg)
}

func (a *aggregator) warn(format string, args ...any) {
	a.warnings = append(a.warnings, fmt.Sprintf(format, args...))
}

// finish sorts every per-day list for stable presentation: the day grid by
// class ID, the class and teacher views by period.
func (a *aggregator) finish() {
	for _, byDay := range a.classSummary {
		for day := range byDay {
			a.sortByPeriod(byDay[day])
		}
	}
	for _, byDay := range a.teacherSummary {
		for day := range byDay {
			a.sortByPeriod(byDay[day])
		}
	}
	for _, byPeriod := range a.dayGrid {
		for period := range byPeriod {
			list := byPeriod[period]
			sort.SliceStable(list, func(i, j int) bool { return list[i].ClassID < list[j].ClassID })
			a.sortOps++
		}
	}
}

func (a *aggregator) sortByPeriod(list []Assignment) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Period < list[j].Period })
	a.sortOps++
}
