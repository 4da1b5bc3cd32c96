// Package polresult defines PolarizationResult and
// PolarizationResultTimeSeries, the output of a single slice's optimizer
// run and the chronologically ordered series the engine assembles from
// them.
package polresult
