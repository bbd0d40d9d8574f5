// Package hcl_adapter implements config.Loader for HCL settings files.
//
// A settings file may contain the blocks input, output, logging, policy and
// watch. Expressions are evaluated with an env object holding the process
// environment, so values such as `path = env.TREE_FILE` are allowed.
package hcl_adapter
