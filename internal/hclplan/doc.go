// Package hclplan loads test plans authored declaratively in HCL.
//
// A plan file contains a single `plan` block whose nested `component` blocks
// mirror the tree structure directly; per-component properties live in a
// `props` block and are evaluated as literal HCL expressions. The loader
// translates the decoded blocks into the plan model, applying catalog
// defaults for every property a block does not set:
//
//	plan "Checkout Smoke" {
//	  component "test_plan" {
//	    component "thread_group" {
//	      props {
//	        num_threads = 5
//	        ramp_time   = 10
//	      }
//	      component "http_request" {
//	        name = "Health"
//	        props {
//	          domain = "example.com"
//	          path   = "/health"
//	        }
//	      }
//	    }
//	  }
//	}
package hclplan
