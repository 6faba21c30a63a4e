// Package config loads declared configuration documents from disk and
// selects the active environment from them.
//
// A document contains per-environment, per-kind lists of named entity
// declarations:
//
//   project: payments
//   environments:
//     default:
//       vpcs:
//         - name: main
//           cidr_block: 10.0.0.0/16
//           region: eu-west-1
//       subnets:
//         - name: workers-a
//           vpc: main
//           cidr_block: 10.0.1.0/24
//           az_index: 0
//
// Selecting an environment that declares nothing returns empty declaration
// sets; the absence of entities is not an error.
package config
