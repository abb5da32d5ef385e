package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleServiceFlipsMembership(t *testing.T) {
	s := &BookingSession{}

	s.ToggleService("svc-1")
	assert.True(t, s.HasService("svc-1"))

	s.ToggleService("svc-1")
	assert.False(t, s.HasService("svc-1"))
	assert.Empty(t, s.SelectedServices)
}

func TestToggleServiceTwiceRestoresTotal(t *testing.T) {
	catalogue := []Service{
		{ID: "cut", Name: "Haircut", Price: 200},
		{ID: "beard", Name: "Beard Trim", Price: 100},
	}
	s := &BookingSession{SelectedServices: []string{"cut"}}
	before := s.Total(catalogue)

	s.ToggleService("beard")
	assert.Equal(t, 300.0, s.Total(catalogue))

	s.ToggleService("beard")
	assert.Equal(t, before, s.Total(catalogue))
	assert.Equal(t, []string{"cut"}, s.SelectedServices)
}

func TestTotalIgnoresUnknownServices(t *testing.T) {
	catalogue := []Service{{ID: "cut", Price: 150}}
	s := &BookingSession{SelectedServices: []string{"cut", "gone"}}

	assert.Equal(t, 150.0, s.Total(catalogue))
}

func TestHasSlot(t *testing.T) {
	s := &BookingSession{}
	assert.False(t, s.HasSlot())

	s.SelectedDay = &DaySlot{DateStr: "2025-10-21"}
	assert.False(t, s.HasSlot())

	s.SelectedTime = "14:00"
	assert.True(t, s.HasSlot())
}
