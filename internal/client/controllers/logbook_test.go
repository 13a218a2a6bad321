package controllers

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pilotdeck/internal/client/gateway"
	"pilotdeck/internal/client/models"
	"pilotdeck/internal/client/session"
	"pilotdeck/internal/common"
	"pilotdeck/internal/logging"
)

func flightRow(id, date string, total float64) gateway.Row {
	return gateway.Row{
		"id":                id,
		"date":              date,
		"aircraft_type":     "C172",
		"departure_airport": "KPAO",
		"arrival_airport":   "KSQL",
		"total_time":        total,
		"night_time":        0.0,
		"instrument_time":   0.0,
		"is_ifr":            false,
		"remarks":           "",
		"pilot_id":          "pilot-1",
	}
}

func newLogbook(gw *fakeGateway) (*Logbook, *session.Session) {
	sess := newTestSession("pilot-1")
	return NewLogbook(gw, sess, logging.NewDiscard()), sess
}

func TestLogbook_UnauthenticatedMakesNoGatewayCalls(t *testing.T) {
	gw := &fakeGateway{}
	l, _ := newLogbook(gw)

	require.Equal(t, Unauthenticated, l.State())
	require.Empty(t, l.Flights())

	_, err := l.Create(context.Background(), models.Flight{Date: day("2024-03-10")})
	require.ErrorIs(t, err, common.ErrSignedOut)

	selects, inserts, deletes := gw.calls()
	require.Zero(t, selects)
	require.Zero(t, inserts)
	require.Zero(t, deletes)
}

func TestLogbook_SignInLoadsNewestFirst(t *testing.T) {
	gw := &fakeGateway{rows: map[string][]gateway.Row{
		gateway.CollectionFlights: {
			flightRow("f2", "2024-03-11", 1.8),
			flightRow("f1", "2024-03-10", 2.3),
		},
	}}
	l, sess := newLogbook(gw)

	signIn(t, sess)
	waitReady(t, l)

	flights := l.Flights()
	require.Len(t, flights, 2)
	require.Equal(t, "f2", flights[0].ID)
	require.Equal(t, "f1", flights[1].ID)
	require.Equal(t, "date", gw.lastOrderBy)
}

func TestLogbook_LoadErrorDegradesToEmptyReady(t *testing.T) {
	gw := &fakeGateway{selectErr: errors.New("boom")}
	l, sess := newLogbook(gw)

	signIn(t, sess)
	waitReady(t, l)

	require.Empty(t, l.Flights())
}

func TestLogbook_MalformedRowDegradesToEmptyReady(t *testing.T) {
	row := flightRow("f1", "2024-03-10", 2.3)
	delete(row, "aircraft_type")
	gw := &fakeGateway{rows: map[string][]gateway.Row{
		gateway.CollectionFlights: {row},
	}}
	l, sess := newLogbook(gw)

	signIn(t, sess)
	waitReady(t, l)

	require.Empty(t, l.Flights())
}

func TestLogbook_CreateStampsOwnerAndPrepends(t *testing.T) {
	gw := &fakeGateway{rows: map[string][]gateway.Row{
		gateway.CollectionFlights: {flightRow("f1", "2024-03-10", 2.3)},
	}}
	l, sess := newLogbook(gw)
	signIn(t, sess)
	waitReady(t, l)

	created, err := l.Create(context.Background(), models.Flight{
		Date:             day("2024-03-12"),
		AircraftType:     "A320",
		DepartureAirport: "KSFO",
		ArrivalAirport:   "KLAS",
		TotalTime:        1.5,
		IsIFR:            true,
	})
	require.NoError(t, err)

	require.Equal(t, "pilot-1", gw.lastInsert["pilot_id"])
	require.NotContains(t, gw.lastInsert, "id")

	require.Equal(t, "srv-1", created.ID)
	require.Equal(t, "pilot-1", created.PilotID)

	flights := l.Flights()
	require.Len(t, flights, 2)
	require.Equal(t, created, flights[0])
	require.Equal(t, "f1", flights[1].ID)
}

func TestLogbook_CreateErrorLeavesCollectionUntouched(t *testing.T) {
	gw := &fakeGateway{rows: map[string][]gateway.Row{
		gateway.CollectionFlights: {flightRow("f1", "2024-03-10", 2.3)},
	}}
	l, sess := newLogbook(gw)
	signIn(t, sess)
	waitReady(t, l)

	gw.mu.Lock()
	gw.insertErr = errors.New("boom")
	gw.mu.Unlock()
	_, err := l.Create(context.Background(), models.Flight{Date: day("2024-03-12")})
	require.Error(t, err)

	flights := l.Flights()
	require.Len(t, flights, 1)
	require.Equal(t, "f1", flights[0].ID)
}

func TestLogbook_StaleLoadIsDiscarded(t *testing.T) {
	gw := &fakeGateway{rows: map[string][]gateway.Row{
		gateway.CollectionFlights: {flightRow("f1", "2024-03-10", 2.3)},
	}}
	l, _ := newLogbook(gw)

	stale := l.beginLoad()
	fresh := l.beginLoad()

	l.load(context.Background(), "pilot-1", fresh)
	require.Equal(t, Ready, l.State())
	require.Len(t, l.Flights(), 1)

	gw.mu.Lock()
	gw.rows[gateway.CollectionFlights] = nil
	gw.mu.Unlock()

	l.load(context.Background(), "pilot-1", stale)
	require.Len(t, l.Flights(), 1, "stale load must not overwrite the collection")
}

func TestLogbook_SignOutDuringLoadNeverExposesStaleSnapshot(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	gw := &fakeGateway{
		rows: map[string][]gateway.Row{
			gateway.CollectionFlights: {flightRow("f1", "2024-03-10", 2.3)},
		},
		onSelect: func() { close(started); <-release },
	}
	l, sess := newLogbook(gw)

	signIn(t, sess)
	<-started
	require.NoError(t, sess.SignOut(context.Background()))
	close(release)

	require.Never(t, func() bool {
		return l.State() == Ready || len(l.Flights()) > 0
	}, 200*time.Millisecond, 5*time.Millisecond)
}

func TestLogbook_SignOutClearsCollection(t *testing.T) {
	gw := &fakeGateway{rows: map[string][]gateway.Row{
		gateway.CollectionFlights: {flightRow("f1", "2024-03-10", 2.3)},
	}}
	l, sess := newLogbook(gw)
	signIn(t, sess)
	waitReady(t, l)

	require.NoError(t, sess.SignOut(context.Background()))

	require.Equal(t, Unauthenticated, l.State())
	require.Empty(t, l.Flights())
}

func TestLogbook_ExportCSV(t *testing.T) {
	gw := &fakeGateway{rows: map[string][]gateway.Row{
		gateway.CollectionFlights: {flightRow("f1", "2024-03-10", 2.3)},
	}}
	l, sess := newLogbook(gw)
	signIn(t, sess)
	waitReady(t, l)

	var buf bytes.Buffer
	require.NoError(t, l.ExportCSV(&buf))
	require.Contains(t, buf.String(), "Date,Aircraft,From,To")
	require.Contains(t, buf.String(), "2024-03-10,C172,KPAO,KSQL,2.3")
}
