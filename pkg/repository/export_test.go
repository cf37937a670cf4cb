package repository

var (
	SheetRange = sheetRange
	CellString = cellString
)
