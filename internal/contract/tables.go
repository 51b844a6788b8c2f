package contract

import "github.com/alexanderramin/helpshift/internal/app"

type DayHeader = app.DayHeader

type HelpTableRequest = app.HelpTableRequest

type ShiftCell = app.ShiftCell

type HelpTableRow = app.HelpTableRow

type HelpTableResponse = app.HelpTableResponse

type RequestTableRequest = app.RequestTableRequest

type RequestCell = app.RequestCell

type RequestTableRow = app.RequestTableRow

type RequestTableResponse = app.RequestTableResponse

type IndividualRequest = app.IndividualRequest

type IndividualRow = app.IndividualRow

type IndividualResponse = app.IndividualResponse

type StoreScheduleRequest = app.StoreScheduleRequest

type Helper = app.Helper

type StoreDay = app.StoreDay

type StoreSchedule = app.StoreSchedule

type StoreScheduleResponse = app.StoreScheduleResponse

type ImportResult = app.ImportResult

// Pages is the number of pages n rows fill at size rows per page.
func Pages(n, size int) int { return app.Pages(n, size) }
