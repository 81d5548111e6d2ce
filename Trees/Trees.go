// Package Trees implements a binary tree with manual insertion.
//
// The caller decides the shape of a BinTree: every node is inserted explicitly as the left or
// right child of an existing node, and deleting a child removes its whole subtree. Push builds an
// unbalanced binary search tree on top of that for ordered values.
//
// Traversal receivers return a closure f acting like an iterator. Calling f is like calling
// "Next()" of iterators: val, valid=f(). val is meaningful only if valid is true. When
// valid==false, then f is exhausted. valid can't turn true after it first became false.
// Every method is implemented iteratively.
package Trees
