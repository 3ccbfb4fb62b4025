// Package worker implements the Worker aggregate of the worker directory.
//
// A Worker is a registered service provider with a trade and region. Workers
// self-report a Free/Busy availability and can be activated or deactivated
// (by themselves or by an administrator); only active workers are eligible
// for order matching.
package worker
