/*
Package rootscan is a pure Go library for locating the real roots of a smooth scalar function over a bounded
interval. It scans the interval with closely spaced seeds, runs a safeguarded Newton-Raphson iteration from
each seed and keeps the distinct convergent roots that fall inside the interval.

The scanner lives in the roots package; the rootscan command exposes it on the terminal.
*/
package rootscan
