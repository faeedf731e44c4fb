package services

import (
	"fmt"

	"villa-backend/models"

	"github.com/xuri/excelize/v2"
)

// BuildBookingsWorkbook renders bookings as an .xlsx for the back office.
func BuildBookingsWorkbook(bookings []models.Booking) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Bookings"

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"Reference", "Guest", "Email", "Phone", "Check-in", "Check-out", "Guests", "Room", "Status", "Created"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, b := range bookings {
		room := "any"
		if b.Room != nil && b.Room.Name != "" {
			room = b.Room.Name
		} else if b.RoomID != nil {
			room = fmt.Sprintf("#%d", *b.RoomID)
		}

		values := []interface{}{
			b.ReferenceCode,
			b.GuestName,
			b.GuestEmail,
			b.GuestPhone,
			b.CheckIn.Format("2006-01-02"),
			b.CheckOut.Format("2006-01-02"),
			b.Guests,
			room,
			b.Status,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
