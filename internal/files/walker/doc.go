// Package walker composes single-level listers into a lazy tree.
//
// A Node is a path record plus everything needed to list its children.
// Node.Children returns a Walker over the node's direct children, each of
// them a Node in turn, so recursion is driven entirely by the caller: a
// browser can expand one node at a time, while Walk, All and Collect consume
// the whole subtree in pre-order.
//
// Usage:
//
//	root, err := walker.NewRoot(filesystem.NewOSFileSystem(), "/srv", treewalk.Options{SafeMode: true})
//	if err != nil {
//	    return err
//	}
//	err = walker.Walk(root, func(n *walker.Node, err error) error {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(n.Record().RelativePath())
//	    return nil
//	})
package walker
