package model

// Statistics is a snapshot of the room's sales figures.
//
// Fields:
//  TicketsSold   – number of seats purchased so far.
//  Percentage    – share of the room sold, 0..100.
//  CurrentIncome – sum of the prices paid for all booked seats.
//  TotalIncome   – income when every seat is sold.
type Statistics struct {
    TicketsSold   int
    Percentage    float64
    CurrentIncome int
    TotalIncome   int
}
