// Package weather defines the weather data model and provider contract
// for Perch, plus a simulated implementation.
//
// # Overview
//
// Perch deliberately has no real weather API integration. The Provider
// interface exists so the rest of the application is written against a
// contract, and Simulated is the only implementation shipped: it
// synthesizes conditions with a seeded random walk so consecutive polls
// drift smoothly, imitates fetch latency, and can be configured to fail
// a fraction of calls so the error path (poll failure → error toast)
// stays exercised.
//
// # Simulation Model
//
// The baseline temperature is a function of latitude (colder toward the
// poles), day of year (seasonal swing, inverted for the southern
// hemisphere), and hour of day (diurnal cycle peaking mid-afternoon).
// Each subsequent observation for a place perturbs the previous one by
// a bounded amount rather than re-rolling, and the summary/icon pair is
// derived from precipitation chance, temperature, and wind.
//
// Provider errors are ordinary application data here: the poller logs
// them and routes them into a toast description, never a panic.
package weather
