package services

import (
	"testing"
	"time"

	"hms/constants"
	"hms/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRoomDisplayStatus(t *testing.T) {
	now := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)
	today := day(2026, time.March, 10)

	checkedInStay := models.Stay{
		Status:       constants.StayStatusCheckedIn,
		CheckInDate:  day(2026, time.March, 8),
		CheckOutDate: day(2026, time.March, 12),
	}

	tests := []struct {
		name string
		room models.Room
		want string
	}{
		{
			name: "out of order overrides occupied",
			room: models.Room{
				Stays: []models.Stay{checkedInStay},
				OutOfOrderBlocks: []models.OutOfOrderBlock{
					{FromDate: day(2026, time.March, 9), ToDate: day(2026, time.March, 11)},
				},
			},
			want: constants.RoomDisplayOutOfOrder,
		},
		{
			name: "out of order block in the past is ignored",
			room: models.Room{
				OutOfOrderBlocks: []models.OutOfOrderBlock{
					{FromDate: day(2026, time.March, 1), ToDate: day(2026, time.March, 5)},
				},
			},
			want: constants.RoomDisplayAvailable,
		},
		{
			name: "occupied while checked in stay covers today",
			room: models.Room{Stays: []models.Stay{checkedInStay}},
			want: constants.RoomDisplayOccupied,
		},
		{
			name: "not occupied on the check-out day itself",
			room: models.Room{
				Stays: []models.Stay{{
					Status:       constants.StayStatusCheckedIn,
					CheckInDate:  day(2026, time.March, 8),
					CheckOutDate: day(2026, time.March, 10),
				}},
			},
			want: constants.RoomDisplayAvailable,
		},
		{
			name: "cleaning when last check-out was today",
			room: models.Room{LastCheckOutDate: &today},
			want: constants.RoomDisplayCleaning,
		},
		{
			name: "cleaning beats waiting for the next arrival",
			room: models.Room{
				LastCheckOutDate: &today,
				Stays: []models.Stay{{
					Status:      constants.StayStatusBooked,
					CheckInDate: day(2026, time.March, 10),
				}},
			},
			want: constants.RoomDisplayCleaning,
		},
		{
			name: "waiting for check-in on arrival day",
			room: models.Room{
				Stays: []models.Stay{{
					Status:       constants.StayStatusBooked,
					CheckInDate:  day(2026, time.March, 10),
					CheckOutDate: day(2026, time.March, 12),
				}},
			},
			want: constants.RoomDisplayWaiting,
		},
		{
			name: "reserved for a future arrival",
			room: models.Room{
				Stays: []models.Stay{{
					Status:       constants.StayStatusBooked,
					CheckInDate:  day(2026, time.March, 15),
					CheckOutDate: day(2026, time.March, 18),
				}},
			},
			want: constants.RoomDisplayReserved,
		},
		{
			name: "checked out stay does not reserve the room",
			room: models.Room{
				Stays: []models.Stay{{
					Status:       constants.StayStatusCheckedOut,
					CheckInDate:  day(2026, time.March, 8),
					CheckOutDate: day(2026, time.March, 9),
				}},
			},
			want: constants.RoomDisplayAvailable,
		},
		{
			name: "falls back to stored status",
			room: models.Room{Status: constants.RoomDisplayCleaning},
			want: constants.RoomDisplayCleaning,
		},
		{
			name: "empty room defaults to available",
			room: models.Room{},
			want: constants.RoomDisplayAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoomDisplayStatus(tt.room, now)
			if got != tt.want {
				t.Errorf("RoomDisplayStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoomDisplayStatusYesterdayCheckout(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	yesterday := day(2026, time.March, 9)

	room := models.Room{LastCheckOutDate: &yesterday}
	if got := RoomDisplayStatus(room, now); got != constants.RoomDisplayAvailable {
		t.Errorf("phòng trả hôm qua phải là Available, got %q", got)
	}
}
