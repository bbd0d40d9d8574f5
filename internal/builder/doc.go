/*
Package builder turns raw record text into a tree.Tree.

Construction is a multi-phase process:

 1. Character check: any ASCII letter anywhere in the input rejects the whole
    input before a single line is parsed.

 2. Record parsing: every non-blank line is split on commas. The first field
    is the node id, the second its parent id, and every remaining field is
    summed into the node value.

 3. Linking: nodes are attached to their parents either in a single pass over
    the records (a parent must appear before its children, otherwise the
    child is left disconnected) or in two passes (all records first, then
    every parent reference is resolved).

The Policy decides what happens with duplicate ids, multiple roots, a missing
root, self-parented nodes, and malformed numbers. DefaultPolicy reproduces the lenient behavior of
the original tool; Strict rejects all of those inputs.
*/
package builder
