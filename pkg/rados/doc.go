/*
Package rados adapts a librados cluster connection to the client's
control channel interface.

Dial reads a ceph.conf (or the default config search path when the
path is empty), connects to the cluster and returns a Conn
implementing client.MonCommander over the monitor command socket.
Connect is the one-call convenience that dials and wraps the
connection in a generation-bound client:

	cli, err := rados.Connect("/etc/ceph/ceph.conf", catalog.Jewel)
	if err != nil {
		log.Fatal(err)
	}
	defer cli.Close()

This package is the only one that links against librados; everything
above it is testable with a fake MonCommander.
*/
package rados
